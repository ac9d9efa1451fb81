package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/fakeapi"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"
)

func setup(t *testing.T) (*fakeapi.Server, *cli.Profile) {
	t.Helper()

	server := fakeapi.New(t)
	server.AddUser(fakeapi.User{Email: "ayse@example.com", FirstName: "Ayşe", LastName: "Yılmaz"})
	tokens := server.Login("ayse@example.com")

	return server, mock.NewProfileWithSession(t, server.URL, auth.TokenPair{Access: tokens.Access, Refresh: tokens.Refresh})
}

func TestFavoritesList(t *testing.T) {
	t.Run("should print the upcoming favorite events", func(t *testing.T) {
		_, profile := setup(t)
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile)))

		output := out.String()
		assert.Contains(t, output, "Found 2 upcoming favorite events")
		assert.Contains(t, output, "Duman")
		assert.Contains(t, output, "Harbiye Acikhava")
		assert.Contains(t, output, "Nov 20, 2026 21:00")
		assert.Contains(t, output, "Sezen Aksu")
		assert.Contains(t, output, "https://www.biletbudur.tr/e/2")
	})

	t.Run("should print a note without favorite events", func(t *testing.T) {
		profile := mock.NewProfile(t)
		client := mock.BiletbudurClient{FavoritesFn: func() ([]biletbudur.Event, error) { return nil, nil }}
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClientsWith(t, profile, client)))

		assert.Equal(t, "01:23:45 UTC INFO  No upcoming favorite events found\n", out.String())
	})

	t.Run("should refresh an expired access token once", func(t *testing.T) {
		server, profile := setup(t)
		server.ExpireAccessTokens()
		_, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile)))

		assert.Equal(t, 1, server.RefreshCalls())
	})

	t.Run("should log the user out when the session cannot be refreshed", func(t *testing.T) {
		server, profile := setup(t)
		server.ExpireAccessTokens()
		server.RevokeRefreshTokens()
		clients := mock.NewClients(t, profile)
		_, ui := mock.NewUI()

		cmd := &CommandList{}
		err := cmd.Handler(context.Background(), profile, ui, clients)

		assert.ErrorIs(t, err, api.ErrUnauthorized)
		assert.False(t, clients.Session.State().Snapshot().Authenticated(), "should be logged out")

		_, ok, _ := profile.Get(auth.KeyRefreshToken)
		assert.False(t, ok, "should clear the session")
	})
}

func TestFavoritesPast(t *testing.T) {
	_, profile := setup(t)
	out, ui := mock.NewUI()

	cmd := &CommandPast{}
	assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile)))

	output := out.String()
	assert.Contains(t, output, "Found 1 past favorite events")
	assert.Contains(t, output, "Mor ve Otesi")
	assert.Contains(t, output, "KucukCiftlik Park")
	assert.Contains(t, output, "May 1, 2025 21:00")
}

func TestFavoritesSummary(t *testing.T) {
	t.Run("should count every kind of favorite", func(t *testing.T) {
		_, profile := setup(t)
		out, ui := mock.NewUI()

		cmd := &CommandSummary{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile)))

		output := out.String()
		assert.Contains(t, output, "Favorites summary")
		assert.Contains(t, output, "Upcoming events  2      Duman")
		assert.Contains(t, output, "Past events      1")
		assert.Contains(t, output, "Performers       1")
	})

	t.Run("should share a single refresh between the concurrent requests", func(t *testing.T) {
		server, profile := setup(t)
		server.ExpireAccessTokens()
		_, ui := mock.NewUI()

		cmd := &CommandSummary{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, mock.NewClients(t, profile)))

		assert.Equal(t, 1, server.RefreshCalls())
	})

	t.Run("should return the first failure", func(t *testing.T) {
		profile := mock.NewProfile(t)
		errPast := errors.New("past favorites are unavailable")
		client := mock.BiletbudurClient{
			FavoritesFn:          func() ([]biletbudur.Event, error) { return nil, nil },
			PastFavoritesFn:      func() ([]biletbudur.Event, error) { return nil, errPast },
			FavoritePerformersFn: func() ([]biletbudur.Performer, error) { return nil, nil },
		}
		_, ui := mock.NewUI()

		cmd := &CommandSummary{}
		err := cmd.Handler(context.Background(), profile, ui, mock.NewClientsWith(t, profile, client))

		assert.Equal(t, errPast, err)
	})
}
