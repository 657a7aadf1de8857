package qmsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qnotify"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// navigator is the slice of the router the pipeline needs: where the user
// is, and the ability to push them to the login surface.
type navigator interface {
	OnAuthSurface() bool
	Navigate(path string) qroute.Decision
}

// Request describes one outbound API call. The retry flag is single-use:
// a call is resent at most once after a refresh, never more.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// SkipBusy opts this call out of the shared busy gauge.
	SkipBusy bool

	retried bool
}

// Pipeline funnels every outbound call through a pre-send stage (credential
// header, busy gauge) and a fixed-order post-receive stage (busy release,
// timeout/network classification, single 401-refresh-retry, status mapping).
type Pipeline struct {
	baseURL string
	client  *http.Client
	session *Session
	busy    *qnotify.BusyGauge
	toasts  *qnotify.Center
	nav     navigator
	refresh *refresher
}

func NewPipeline(cfg *Config, session *Session, nav navigator, toasts *qnotify.Center, busy *qnotify.BusyGauge) *Pipeline {
	p := &Pipeline{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout()},
		session: session,
		busy:    busy,
		toasts:  toasts,
		nav:     nav,
	}
	p.refresh = newRefresher(p)
	return p
}

// Do executes the request and decodes a 2xx JSON body into out (out may be
// nil). Failures come back as *qerr.Error after the post-receive stages ran.
func (p *Pipeline) Do(ctx context.Context, req *Request, out any) error {
	resp, err := p.dispatch(ctx, req, p.session.AccessToken())
	return p.receive(ctx, req, resp, err, out)
}

// dispatch runs the pre-send stage and performs the HTTP exchange. The busy
// gauge is lowered here, unconditionally and before any classification, so
// the loading indicator cannot hang on an error path.
func (p *Pipeline) dispatch(ctx context.Context, req *Request, token string) (*http.Response, error) {
	target := p.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	if !req.SkipBusy {
		p.busy.Raise()
	}
	resp, err := p.client.Do(httpReq)
	if !req.SkipBusy {
		p.busy.Lower()
	}
	return resp, err
}

// receive runs the post-receive stages in their fixed order.
func (p *Pipeline) receive(ctx context.Context, req *Request, resp *http.Response, err error, out any) error {
	if err != nil {
		if isTimeout(err) {
			p.toasts.Error("Request timeout. Please try again.")
			return qerr.New(qerr.CodeTimeout, err)
		}
		p.toasts.Error("Network error. Please check your connection.")
		return qerr.New(qerr.CodeNetworkUnavailable, err)
	}

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		p.toasts.Error("Network error. Please check your connection.")
		return qerr.New(qerr.CodeNetworkUnavailable, err)
	}

	if resp.StatusCode < http.StatusBadRequest {
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return qerr.New(qerr.CodeUnknown, fmt.Errorf("decoding response: %w", err))
			}
		}
		return nil
	}

	serverMsg := serverMessage(raw)

	if resp.StatusCode == http.StatusUnauthorized && !req.retried {
		req.retried = true
		return p.recoverUnauthorized(ctx, req, serverMsg, out)
	}

	msg := messageForStatus(resp.StatusCode, serverMsg)
	// A 401 on a public surface already produced its own handling; a second
	// toast would be noise on top of the login form's error.
	if !(p.nav.OnAuthSurface() && resp.StatusCode == http.StatusUnauthorized) {
		p.toasts.Error(msg)
	}
	return qerr.FromStatus(resp.StatusCode, serverMsg)
}

// recoverUnauthorized is post-receive stage 4: one refresh, one resend.
func (p *Pipeline) recoverUnauthorized(ctx context.Context, req *Request, serverMsg string, out any) error {
	if p.nav.OnAuthSurface() || !p.session.IsAuthenticated() {
		// Nothing to recover: either the user is on an auth surface where
		// the 401 belongs to the form, or there is no live session. Purge
		// whatever stale credential triggered it.
		if p.session.HasToken() {
			p.session.Clear()
		}
		return qerr.FromStatus(http.StatusUnauthorized, serverMsg)
	}

	newToken, err := p.refresh.refresh(ctx)
	if err != nil {
		// The refresher already cleared the session and routed to login;
		// the caller gets the refresh error, not the original 401.
		return err
	}

	resp, derr := p.dispatch(ctx, req, newToken)
	return p.receive(ctx, req, resp, derr, out)
}

func messageForStatus(status int, serverMsg string) string {
	switch {
	case status == http.StatusForbidden:
		return "Access denied"
	case status == http.StatusNotFound:
		return "Resource not found"
	case status == http.StatusUnprocessableEntity:
		if serverMsg != "" {
			return serverMsg
		}
		return "Invalid input data"
	case status >= 500:
		return "Server error. Please try again later"
	case serverMsg != "":
		return serverMsg
	default:
		return "An unexpected error occurred"
	}
}

// serverMessage pulls the error detail out of an API error body.
func serverMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
