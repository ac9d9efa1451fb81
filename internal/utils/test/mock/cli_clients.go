package mock

import (
	"context"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
)

// NewClients returns the command clients of the profile's server
// with the session restored from the profile
func NewClients(t *testing.T, profile *cli.Profile) cli.Clients {
	t.Helper()

	state := auth.NewState()
	client := biletbudur.NewAuthClient(profile.BaseURL(), profile, biletbudur.WithSessionExpiredHook(state.Expire))
	return newClients(t, profile, state, client)
}

// NewClientsWith returns the command clients backed by the provided biletbudur client
func NewClientsWith(t *testing.T, profile *cli.Profile, client biletbudur.Client) cli.Clients {
	t.Helper()
	return newClients(t, profile, auth.NewState(), client)
}

func newClients(t *testing.T, profile *cli.Profile, state *auth.State, client biletbudur.Client) cli.Clients {
	session := auth.NewService(profile, state, client)
	assert.Nil(t, session.Restore(context.Background()).Err())
	return cli.Clients{
		Biletbudur: client,
		Session:    session,
		Events:     biletbudur.NewClient(profile.EventsURL()),
	}
}
