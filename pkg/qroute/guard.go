package qroute

// SessionState is the slice of the session the guard consults. Clear is
// invoked when a stale token is found on the login/register surface.
type SessionState interface {
	IsAuthenticated() bool
	Role() Role
	HasToken() bool
	Clear()
}

// Decision is the guard's verdict: the route the transition actually lands
// on, and whether that differs from the requested one.
type Decision struct {
	Route      Route
	Redirected bool
}

// LandingPath returns the dashboard appropriate for a role.
func LandingPath(role Role) string {
	if role == RoleAdmin {
		return "/admin/dashboard"
	}
	return "/dashboard"
}

// Guard evaluates a transition to the target route against the current
// session. Order matters: the public surfaces are always reachable, then
// guest-only, then auth-required, then role checks.
func Guard(to Route, s SessionState) Decision {
	authed := s.IsAuthenticated()
	role := s.Role()

	if to.IsAuthSurface() {
		if (to.Name == "Login" || to.Name == "Register") && authed {
			return redirect(LandingPath(role))
		}
		// Leftover token without a live session means an expired login;
		// purge it before handing the user the auth forms.
		if (to.Name == "Login" || to.Name == "Register") && s.HasToken() && !authed {
			s.Clear()
		}
		return Decision{Route: to}
	}

	if to.Meta.RequiresGuest && authed {
		return redirect(LandingPath(role))
	}

	if to.Meta.RequiresAuth && !authed {
		return redirect("/login")
	}

	if to.Meta.Role != RoleNone && to.Meta.Role != role {
		return redirect(LandingPath(role))
	}

	return Decision{Route: to}
}

func redirect(path string) Decision {
	return Decision{Route: Match(path), Redirected: true}
}
