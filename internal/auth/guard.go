package auth

import (
	"sync"
)

// Route is a destination in the client, grouped into the auth area
// (screens to log in or sign up) and the authenticated area
type Route struct {
	Name  string
	Group string
}

// GroupAuth is the group of routes used to authenticate
const GroupAuth = "auth"

// set of routes the guard redirects to
var (
	RouteLogin = Route{Name: "login", Group: GroupAuth}
	RouteHome  = Route{Name: "home"}
)

// InAuthGroup returns true when the route belongs to the auth area
func (r Route) InAuthGroup() bool {
	return r.Group == GroupAuth
}

// Navigator moves the client to a different route
type Navigator interface {
	Replace(route Route)
}

// Guard redirects the client between the auth and the authenticated areas
// based on the session state. The decision is re-evaluated every time the
// session state or the current route changes, and never while the session is loading
type Guard struct {
	state     *State
	navigator Navigator

	mu          sync.Mutex
	route       Route
	unsubscribe func()
}

// NewGuard creates a guard that observes state and redirects through navigator
func NewGuard(state *State, navigator Navigator) *Guard {
	g := &Guard{state: state, navigator: navigator}
	g.unsubscribe = state.Subscribe(func(SessionState) { g.evaluate() })
	return g
}

// Navigate records route as the current route and re-evaluates the guard
func (g *Guard) Navigate(route Route) {
	g.mu.Lock()
	g.route = route
	g.mu.Unlock()

	g.evaluate()
}

// Route returns the current route
func (g *Guard) Route() Route {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.route
}

// Close stops the guard from observing the session state
func (g *Guard) Close() {
	g.unsubscribe()
}

func (g *Guard) evaluate() {
	g.mu.Lock()
	route := g.route
	g.mu.Unlock()

	if route == (Route{}) {
		return
	}

	target, ok := Decide(g.state.Snapshot(), route)
	if !ok {
		return
	}

	g.mu.Lock()
	g.route = target
	g.mu.Unlock()

	g.navigator.Replace(target)
}

// Decide returns the route to redirect to for the given session state and current route,
// or false when no redirect is needed
func Decide(state SessionState, current Route) (Route, bool) {
	if state.Loading {
		return Route{}, false
	}
	switch inAuth := current.InAuthGroup(); {
	case state.User == nil && !inAuth:
		return RouteLogin, true
	case state.User != nil && inAuth:
		return RouteHome, true
	}
	return Route{}, false
}
