package qmsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
)

// refresher coordinates token refreshes. When many in-flight calls fail
// with the same expired token, exactly one POST /auth/refresh goes out and
// every caller settles on its outcome; single-threaded scheduling is not
// relied on for that guarantee. Issuing parallel refreshes would risk the
// server invalidating the refresh token mid-rotation.
type refresher struct {
	p     *Pipeline
	group singleflight.Group
}

const refreshKey = "refresh"

func newRefresher(p *Pipeline) *refresher {
	return &refresher{p: p}
}

// refresh returns a fresh access token, coalescing concurrent callers onto
// a single in-flight refresh cycle. On failure the session is cleared and,
// unless the user is already on a public surface, they are told and routed
// to login. All coalesced callers receive the same error.
func (r *refresher) refresh(ctx context.Context) (string, error) {
	v, err, _ := r.group.Do(refreshKey, func() (any, error) {
		return r.doRefresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *refresher) doRefresh(ctx context.Context) (string, error) {
	token, err := r.exchange(ctx)
	if err != nil {
		r.p.session.Clear()
		if !r.p.nav.OnAuthSurface() {
			r.p.toasts.Error("Session expired. Please login again.")
			r.p.nav.Navigate("/login")
		}
		return "", err
	}
	return token, nil
}

// exchange presents the refresh token to the refresh endpoint and swaps the
// access token in place, keeping refresh token, user and role.
func (r *refresher) exchange(ctx context.Context) (string, error) {
	refreshToken := r.p.session.RefreshToken()
	if refreshToken == "" {
		return "", qerr.Newf(qerr.CodeRefreshFailed, "no refresh token available")
	}

	// The refresh call is dispatched directly so it can never re-enter the
	// 401-recovery stage; timeouts and error statuses here are all refresh
	// failures.
	req := &Request{Method: http.MethodPost, Path: "/auth/refresh"}
	resp, err := r.p.dispatch(ctx, req, refreshToken)
	if err != nil {
		return "", qerr.New(qerr.CodeRefreshFailed, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", qerr.New(qerr.CodeRefreshFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := serverMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("refresh failed: status %d", resp.StatusCode)
		}
		return "", qerr.Newf(qerr.CodeRefreshFailed, "%s", msg)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", qerr.New(qerr.CodeRefreshFailed, err)
	}
	if body.AccessToken == "" {
		return "", qerr.Newf(qerr.CodeRefreshFailed, "refresh response missing access token")
	}

	s := r.p.session
	if err := s.SetAuthenticated(body.AccessToken, refreshToken, s.CurrentUser(), s.Role()); err != nil {
		return "", qerr.New(qerr.CodeRefreshFailed, err)
	}
	return body.AccessToken, nil
}
