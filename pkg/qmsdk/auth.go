package qmsdk

import (
	"context"
	"errors"
	"net/http"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// Credentials is the login exchange payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload. Role is implicitly "user".
type Registration struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"full_name"`
	Qualification string `json:"qualification,omitempty"`
}

type authResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
	Role         string `json:"role"`
}

// Login exchanges credentials for a session. On success the session becomes
// authenticated and the user lands on the role-appropriate dashboard. On
// failure the session stays empty and a translated message is surfaced.
func (s *SDK) Login(ctx context.Context, creds Credentials) (*User, error) {
	var out authResponse
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/auth/login", Body: creds}, &out)
	if err != nil {
		s.Toasts.Error(loginErrorMessage(err))
		return nil, err
	}

	role := qroute.Role(out.Role)
	if role == qroute.RoleNone {
		role = qroute.RoleUser
	}
	if err := s.Session.SetAuthenticated(out.AccessToken, out.RefreshToken, out.User, role); err != nil {
		return nil, err
	}

	s.Toasts.Success("Login successful!")
	s.Router.Navigate(qroute.LandingPath(role))
	return out.User, nil
}

// Register creates an account and signs the new user straight in.
func (s *SDK) Register(ctx context.Context, reg Registration) (*User, error) {
	var out authResponse
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPost, Path: "/auth/register", Body: reg}, &out)
	if err != nil {
		msg := serverMessageOf(err)
		if msg == "" {
			msg = "Registration failed"
		}
		s.Toasts.Error(msg)
		return nil, err
	}

	if err := s.Session.SetAuthenticated(out.AccessToken, out.RefreshToken, out.User, qroute.RoleUser); err != nil {
		return nil, err
	}

	s.Toasts.Success("Registration successful!")
	s.Router.Navigate("/dashboard")
	return out.User, nil
}

// Logout destroys the session and returns to the login surface.
func (s *SDK) Logout() {
	s.Session.Clear()
	s.Toasts.Success("Logged out successfully")
	s.Router.Navigate("/login")
}

// Me fetches the current profile and folds it into the session.
func (s *SDK) Me(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodGet, Path: "/auth/me"}, &out)
	if err != nil {
		s.Toasts.Error("Failed to fetch user data")
		return nil, err
	}
	if err := s.Session.UpdateProfile(out.User); err != nil {
		return nil, err
	}
	return out.User, nil
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName      string `json:"full_name,omitempty"`
	Qualification string `json:"qualification,omitempty"`
}

// UpdateProfile saves profile edits and refreshes the session's identity
// field, leaving tokens untouched.
func (s *SDK) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*User, error) {
	var out struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}
	err := s.pipeline.Do(ctx, &Request{Method: http.MethodPut, Path: "/auth/profile", Body: upd}, &out)
	if err != nil {
		return nil, err
	}
	if out.User != nil {
		if err := s.Session.UpdateProfile(out.User); err != nil {
			return nil, err
		}
	}
	return out.User, nil
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (s *SDK) ChangePassword(ctx context.Context, chg PasswordChange) error {
	return s.pipeline.Do(ctx, &Request{Method: http.MethodPut, Path: "/auth/change-password", Body: chg}, nil)
}

// loginErrorMessage translates a failed login into the message shown on the
// login form. Server-supplied detail wins over the generic per-kind text.
func loginErrorMessage(err error) string {
	switch {
	case qerr.IsCode(err, qerr.CodeTimeout):
		return "Login request timed out. Please check your connection and try again."
	case qerr.IsCode(err, qerr.CodeNetworkUnavailable):
		return "Network error. Please check if the server is running and try again."
	}
	msg := serverMessageOf(err)
	switch status := qerr.StatusOf(err); {
	case status == http.StatusUnauthorized:
		if msg != "" {
			return msg
		}
		return "Invalid email or password"
	case status == http.StatusUnprocessableEntity:
		if msg != "" {
			return msg
		}
		return "Invalid input data"
	case status >= 500:
		return "Server error. Please try again later."
	case msg != "":
		return msg
	default:
		return "Login failed"
	}
}

// serverMessageOf digs the server-supplied detail out of a coded error.
func serverMessageOf(err error) string {
	var e *qerr.Error
	if errors.As(err, &e) && e.Status != 0 {
		if inner := e.Unwrap(); inner != nil {
			return inner.Error()
		}
	}
	return ""
}
