package biletbudur_test

import (
	"context"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	u "github.com/emreeozkull/biletbudur-cli/internal/utils/test"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"
)

func TestLiveServer(t *testing.T) {
	u.SkipUnlessLiveServer(t)

	email, password := u.LiveCredentials()

	tokens, err := biletbudur.NewClient(u.LiveServerURL()).Authenticate(context.Background(), email, password)
	assert.Nil(t, err)

	claims, err := auth.ParseClaims(tokens.Access)
	assert.Nil(t, err)
	assert.False(t, claims.ExpiresAt.IsZero(), "access token should expire")

	client := biletbudur.NewAuthClient(u.LiveServerURL(), mock.NewCredentialStore(tokens))

	_, err = client.Favorites(context.Background())
	assert.Nil(t, err)

	_, err = client.FavoritePerformers(context.Background())
	assert.Nil(t, err)
}
