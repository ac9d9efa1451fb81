package mock

import (
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const profileDir = "/home/test/.config/biletbudur"

// NewProfile returns a new CLI profile with a random name kept in memory
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()
	profile, _ := NewProfileWithFs(t)
	return profile
}

// NewProfileWithFs returns a new CLI profile with a random name
// along with the in-memory file system it is stored on
func NewProfileWithFs(t *testing.T) (*cli.Profile, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	profile := cli.NewProfileWithFs(primitive.NewObjectID().Hex(), profileDir, fs)
	assert.Nil(t, profile.Load())
	return profile, fs
}

// NewProfileWithSession returns a new CLI profile holding the token pair
// and pointed at the provided server for both the api and the event feed
func NewProfileWithSession(t *testing.T, baseURL string, tokens auth.TokenPair) *cli.Profile {
	t.Helper()

	profile := NewProfile(t)
	profile.SetBaseURL(baseURL)
	profile.SetEventsURL(baseURL)
	assert.Nil(t, profile.SetTokens(tokens))
	return profile
}
