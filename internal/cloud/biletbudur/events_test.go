package biletbudur_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/cloud/biletbudur"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/api"
	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
)

func TestClientEvents(t *testing.T) {
	t.Run("Should read the documents of the public feed", func(t *testing.T) {
		server := newServer(t)
		client := biletbudur.NewClient(server.URL)

		events, err := client.Events(context.Background(), 0)
		assert.Nil(t, err)
		assert.Equal(t, 3, len(events))

		assert.Equal(t, biletbudur.Text("Athena"), events[0].Name)
		assert.Equal(t, biletbudur.Text("Zorlu PSM"), events[0].VenueName)
		assert.Equal(t, biletbudur.Text("https://www.biletbudur.tr/img/athena.png"), events[0].ImageURL)
		assert.Equal(t, biletbudur.Text("Hamlet"), events[2].Name)
		assert.Equal(t, "Nov 15, 2026 00:00", events[2].DisplayDate())

		assert.Equal(t, 1, server.Calls(biletbudur.EventsPath))
		assert.Equal(t, 0, server.AuthorizedEventQueries())
	})

	t.Run("Should limit the number of documents", func(t *testing.T) {
		server := newServer(t)
		client := biletbudur.NewClient(server.URL)

		events, err := client.Events(context.Background(), 2)
		assert.Nil(t, err)
		assert.Equal(t, 2, len(events))
	})

	t.Run("Should leave the session untouched when read with an expired session", func(t *testing.T) {
		server := newServer(t)
		store, tokens := newSession(server)
		client := biletbudur.NewAuthClient(server.URL, store)

		server.ExpireAccessTokens()
		server.RevokeRefreshTokens()

		events, err := client.Events(context.Background(), 0)
		assert.Nil(t, err)
		assert.Equal(t, 3, len(events))

		assert.Equal(t, 0, server.AuthorizedEventQueries())
		assert.Equal(t, 0, server.RefreshCalls())
		assert.Equal(t, tokens.Access, store.Tokens().Access)
		assert.Equal(t, tokens.Refresh, store.Tokens().Refresh)
	})

	t.Run("Should not refresh the session when the feed rejects the request", func(t *testing.T) {
		server := newServer(t)
		store, tokens := newSession(server)

		feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "", r.Header.Get(api.HeaderAuthorization))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
		}))
		defer feed.Close()

		client := biletbudur.NewAuthClient(feed.URL, store)

		_, err := client.Events(context.Background(), 0)
		assert.ErrorIs(t, err, api.ErrUnauthorized)
		assert.Equal(t, 0, server.RefreshCalls())
		assert.Equal(t, tokens.Refresh, store.Tokens().Refresh)
	})

	t.Run("Should return no events when the response holds no documents", func(t *testing.T) {
		feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"responseHeader":{"status":0}}`))
		}))
		defer feed.Close()

		events, err := biletbudur.NewClient(feed.URL).Events(context.Background(), 0)
		assert.Nil(t, err)
		assert.Equal(t, 0, len(events))
	})

	t.Run("Should return the server error of the feed", func(t *testing.T) {
		feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer feed.Close()

		_, err := biletbudur.NewClient(feed.URL).Events(context.Background(), 0)
		assert.Equal(t, http.StatusServiceUnavailable, api.StatusCode(err))
	})
}
