package cli

import (
	"sync"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
)

// routeNavigator records where the session guard sends a running command.
// A command cannot move to another screen, so the factory turns the
// recorded redirect into the command's outcome
type routeNavigator struct {
	mu       sync.Mutex
	redirect *auth.Route
}

func (n *routeNavigator) Replace(route auth.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirect = &route
}

func (n *routeNavigator) last() (auth.Route, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.redirect == nil {
		return auth.Route{}, false
	}
	return *n.redirect, true
}

func (n *routeNavigator) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirect = nil
}
