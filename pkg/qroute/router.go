package qroute

import "sync"

// Router tracks the active view and applies the guard on every transition.
// The request pipeline consults it to decide whether a 401 happened on a
// public surface.
type Router struct {
	mu      sync.Mutex
	session SessionState
	current Route
}

// NewRouter starts at the home route.
func NewRouter(session SessionState) *Router {
	return &Router{session: session, current: Match("/")}
}

// Navigate resolves path, runs the guard, and moves to the resulting route.
func (r *Router) Navigate(path string) Decision {
	d := Guard(Match(path), r.session)
	r.mu.Lock()
	r.current = d.Route
	r.mu.Unlock()
	return d
}

// Current returns the active route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// OnAuthSurface reports whether the active view is home, login or register.
func (r *Router) OnAuthSurface() bool {
	return r.Current().IsAuthSurface()
}
