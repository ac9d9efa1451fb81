package login

import (
	"context"
	"errors"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
	"github.com/emreeozkull/biletbudur-cli/internal/cli"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/fakeapi"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/mock"
)

func setup(t *testing.T) (*fakeapi.Server, *cli.Profile) {
	t.Helper()

	server := fakeapi.New(t)
	server.AddUser(fakeapi.User{Email: "ayse@example.com", Password: "correct horse", FirstName: "Ayşe", LastName: "Yılmaz"})

	profile := mock.NewProfile(t)
	profile.SetBaseURL(server.URL)
	return server, profile
}

func TestLoginHandler(t *testing.T) {
	t.Run("should store the session of a successful login", func(t *testing.T) {
		_, profile := setup(t)
		clients := mock.NewClients(t, profile)
		out, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ayse@example.com", Password: "correct horse"}}

		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients))
		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged in as Ayşe Yılmaz\n", out.String())

		access, ok, err := profile.Get(auth.KeyAccessToken)
		assert.Nil(t, err)
		assert.True(t, ok, "should store an access token")

		claims, err := auth.ParseClaims(access)
		assert.Nil(t, err)
		assert.Equal(t, "ayse@example.com", claims.Email)

		identity, ok := profile.CachedIdentity()
		assert.True(t, ok, "should cache the identity")
		assert.Equal(t, auth.Identity{Email: "ayse@example.com", FirstName: "Ayşe", LastName: "Yılmaz"}, identity)

		assert.True(t, clients.Session.State().Snapshot().Authenticated(), "should be authenticated")
	})

	t.Run("should report invalid credentials without storing a session", func(t *testing.T) {
		server, profile := setup(t)
		clients := mock.NewClients(t, profile)
		out, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ayse@example.com", Password: "wrong"}}

		err := cmd.Handler(context.Background(), profile, ui, clients)

		var credentialsErr auth.InvalidCredentialsError
		assert.True(t, errors.As(err, &credentialsErr), "expected invalid credentials, got %v", err)
		assert.Equal(t, fakeapi.DetailNoActiveAccount, credentialsErr.Error())
		assert.Equal(t, "", out.String())

		_, ok, _ := profile.Get(auth.KeyAccessToken)
		assert.False(t, ok, "should not store a session")
		assert.Equal(t, 0, server.RefreshCalls())
	})

	t.Run("should report an unreachable server", func(t *testing.T) {
		server, profile := setup(t)
		server.Close()
		clients := mock.NewClients(t, profile)
		_, ui := mock.NewUI()

		cmd := &Command{inputs{Email: "ayse@example.com", Password: "correct horse"}}

		err := cmd.Handler(context.Background(), profile, ui, clients)

		var networkErr api.NetworkError
		assert.True(t, errors.As(err, &networkErr), "expected a network error, got %v", err)
	})
}
