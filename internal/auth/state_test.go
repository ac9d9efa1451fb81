package auth

import (
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
)

func TestState(t *testing.T) {
	t.Run("Should start out loading without a user", func(t *testing.T) {
		state := NewState()
		assert.Equal(t, SessionState{Loading: true}, state.Snapshot())
	})

	t.Run("Should notify subscribers in order when the state changes", func(t *testing.T) {
		state := NewState()

		var calls []string
		state.Subscribe(func(s SessionState) { calls = append(calls, "first") })
		state.Subscribe(func(s SessionState) { calls = append(calls, "second") })

		state.setLoading(false)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("Should not notify subscribers when nothing changed", func(t *testing.T) {
		state := NewState()

		var count int
		state.Subscribe(func(s SessionState) { count++ })

		state.setLoading(true)
		state.setUser(nil)
		assert.Equal(t, 0, count)

		state.setUser(&Identity{Email: "user@example.com"})
		state.setUser(&Identity{Email: "user@example.com"})
		assert.Equal(t, 1, count)
	})

	t.Run("Should stop notifying a subscriber once unsubscribed", func(t *testing.T) {
		state := NewState()

		var count int
		unsubscribe := state.Subscribe(func(s SessionState) { count++ })

		state.setLoading(false)
		unsubscribe()
		state.setUser(&Identity{Email: "user@example.com"})

		assert.Equal(t, 1, count)
	})

	t.Run("Should hand out copies of the user", func(t *testing.T) {
		state := NewState()
		state.setUser(&Identity{Email: "user@example.com"})

		snapshot := state.Snapshot()
		snapshot.User.Email = "changed@example.com"

		assert.Equal(t, "user@example.com", state.Snapshot().User.Email)
	})

	t.Run("Expire should clear the user and leave loading untouched", func(t *testing.T) {
		state := NewState()
		state.setLoading(false)
		state.setUser(&Identity{Email: "user@example.com"})

		var notified SessionState
		state.Subscribe(func(s SessionState) { notified = s })

		state.Expire()

		assert.Equal(t, SessionState{}, state.Snapshot())
		assert.Equal(t, SessionState{}, notified)
	})
}
