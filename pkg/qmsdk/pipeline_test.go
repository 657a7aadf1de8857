package qmsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/kv"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qnotify"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// refreshServer is a test double for the platform API: a protected endpoint
// that only accepts the current token, and a refresh endpoint that rotates it.
type refreshServer struct {
	mu            sync.Mutex
	goodToken     string
	refreshToken  string
	refreshDelay  time.Duration
	refreshDenied bool
	alwaysDeny    bool

	refreshCalls   atomic.Int64
	protectedCalls atomic.Int64
}

func (rs *refreshServer) handler() http.Handler {
	mux := http.NewServeMux()
	// Method checks live inside the handlers because method-prefixed
	// ServeMux patterns ("POST /auth/refresh") need go1.22+, and this
	// module must build with go1.21.
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rs.refreshCalls.Add(1)
		if rs.refreshDelay > 0 {
			time.Sleep(rs.refreshDelay)
		}
		if rs.refreshDenied || r.Header.Get("Authorization") != "Bearer "+rs.refreshToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid token"})
			return
		}
		rs.mu.Lock()
		rs.goodToken = "rotated-" + rs.goodToken
		token := rs.goodToken
		rs.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	})
	mux.HandleFunc("/user/subjects", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rs.protectedCalls.Add(1)
		rs.mu.Lock()
		good := "Bearer " + rs.goodToken
		rs.mu.Unlock()
		if rs.alwaysDeny || r.Header.Get("Authorization") != good {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"subjects": []Subject{{ID: 1, Name: "Math", Slug: "math"}}})
	})
	return mux
}

func newTestSDK(t *testing.T, baseURL string) *SDK {
	t.Helper()
	cfg := &Config{BaseURL: baseURL, TimeoutSeconds: 5}
	sdk, err := NewWithStore(cfg, kv.NewMemoryStore())
	require.NoError(t, err)
	return sdk
}

// authenticate installs a session holding a stale access token and moves off
// the public surfaces, the steady state in which 401 recovery applies.
func authenticate(t *testing.T, sdk *SDK, role qroute.Role) {
	t.Helper()
	user := &User{ID: 1, Username: "alice", Email: "alice@example.com", FullName: "Alice"}
	require.NoError(t, sdk.Session.SetAuthenticated("stale-token", "refresh-token", user, role))
	d := sdk.Router.Navigate(qroute.LandingPath(role))
	require.False(t, d.Redirected)
}

func TestPipeline401RefreshesAndRetriesOnce(t *testing.T) {
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token"}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	subjects, err := sdk.Subjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 1)

	require.EqualValues(t, 1, rs.refreshCalls.Load())
	require.EqualValues(t, 2, rs.protectedCalls.Load())
	require.Equal(t, "rotated-fresh", sdk.Session.AccessToken())
	require.Equal(t, "refresh-token", sdk.Session.RefreshToken())
	require.Equal(t, "alice", sdk.Session.CurrentUser().Username)
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineSecond401SurfacesWithoutSecondRefresh(t *testing.T) {
	// The server rejects even freshly minted tokens.
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token", alwaysDeny: true}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	var out struct{}
	err := sdk.Pipeline().Do(context.Background(), &Request{Method: http.MethodGet, Path: "/user/subjects"}, &out)
	require.Error(t, err)
	require.True(t, qerr.IsCode(err, qerr.CodeUnauthorized))

	require.EqualValues(t, 1, rs.refreshCalls.Load())
	require.EqualValues(t, 2, rs.protectedCalls.Load())
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineCoalescesConcurrentRefreshes(t *testing.T) {
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token", refreshDelay: 150 * time.Millisecond}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 1 {
				time.Sleep(40 * time.Millisecond)
			}
			_, errs[i] = sdk.Subjects(context.Background())
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.EqualValues(t, 1, rs.refreshCalls.Load(), "concurrent 401s must share one refresh")
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineRefreshFailureClearsSessionAndRedirects(t *testing.T) {
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token", refreshDenied: true}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	var messages []string
	sdk.Toasts.Subscribe(func(toast qnotify.Toast) { messages = append(messages, toast.Message) })

	_, err := sdk.Subjects(context.Background())
	require.Error(t, err)
	require.True(t, qerr.IsCode(err, qerr.CodeRefreshFailed), "caller gets the refresh error, not the original 401")

	require.False(t, sdk.Session.IsAuthenticated())
	require.False(t, sdk.Session.HasToken())
	require.Equal(t, "/login", sdk.Router.Current().Path)
	require.Contains(t, messages, "Session expired. Please login again.")
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineMissingRefreshTokenFailsWithoutRemoteCall(t *testing.T) {
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token"}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	user := &User{ID: 1, Username: "alice"}
	require.NoError(t, sdk.Session.SetAuthenticated("stale-token", "", user, qroute.RoleUser))
	sdk.Router.Navigate("/dashboard")

	_, err := sdk.Subjects(context.Background())
	require.True(t, qerr.IsCode(err, qerr.CodeRefreshFailed))
	require.EqualValues(t, 0, rs.refreshCalls.Load())
	require.False(t, sdk.Session.HasToken())
}

func TestPipeline401OnAuthSurfacePurgesWithoutRefresh(t *testing.T) {
	rs := &refreshServer{goodToken: "fresh", refreshToken: "refresh-token"}
	srv := httptest.NewServer(rs.handler())
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	user := &User{ID: 1, Username: "alice"}
	require.NoError(t, sdk.Session.SetAuthenticated("stale-token", "refresh-token", user, qroute.RoleUser))
	// Force the router onto the login surface despite the live-looking session.
	sdk.Router.Navigate("/")

	var out struct{}
	err := sdk.Pipeline().Do(context.Background(), &Request{Method: http.MethodGet, Path: "/user/subjects"}, &out)
	require.True(t, qerr.IsCode(err, qerr.CodeUnauthorized))
	require.EqualValues(t, 0, rs.refreshCalls.Load())
	require.False(t, sdk.Session.HasToken(), "stale credentials are purged")
}

func TestPipelineTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	sdk.Pipeline().client.Timeout = 50 * time.Millisecond
	authenticate(t, sdk, qroute.RoleUser)

	var messages []string
	sdk.Toasts.Subscribe(func(toast qnotify.Toast) { messages = append(messages, toast.Message) })

	_, err := sdk.Subjects(context.Background())
	require.True(t, qerr.IsCode(err, qerr.CodeTimeout))
	require.Contains(t, messages, "Request timeout. Please try again.")
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	var messages []string
	sdk.Toasts.Subscribe(func(toast qnotify.Toast) { messages = append(messages, toast.Message) })

	_, err := sdk.Subjects(context.Background())
	require.True(t, qerr.IsCode(err, qerr.CodeNetworkUnavailable))
	require.Contains(t, messages, "Network error. Please check your connection.")
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineStatusMessages(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
		code    qerr.Code
	}{
		{"forbidden", http.StatusForbidden, "", "Access denied", qerr.CodeForbidden},
		{"not found", http.StatusNotFound, "", "Resource not found", qerr.CodeNotFound},
		{"validation", http.StatusUnprocessableEntity, `{"error":"Name is required"}`, "Name is required", qerr.CodeValidationFailed},
		{"validation default", http.StatusUnprocessableEntity, "", "Invalid input data", qerr.CodeValidationFailed},
		{"server fault", http.StatusInternalServerError, "", "Server error. Please try again later", qerr.CodeServerFault},
		{"server message", http.StatusBadRequest, `{"error":"Quiz already submitted"}`, "Quiz already submitted", qerr.CodeUnknown},
		{"generic", http.StatusBadRequest, "", "An unexpected error occurred", qerr.CodeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.body != "" {
					w.Write([]byte(tc.body))
				}
			}))
			defer srv.Close()

			sdk := newTestSDK(t, srv.URL)
			authenticate(t, sdk, qroute.RoleUser)

			var messages []string
			sdk.Toasts.Subscribe(func(toast qnotify.Toast) { messages = append(messages, toast.Message) })

			err := sdk.Pipeline().Do(context.Background(), &Request{Method: http.MethodGet, Path: "/x"}, nil)
			require.True(t, qerr.IsCode(err, tc.code))
			require.Equal(t, tc.status, qerr.StatusOf(err))
			require.Contains(t, messages, tc.message)
			require.Zero(t, sdk.Busy.Outstanding())
		})
	}
}

func TestPipelineBusyRaisedDuringDispatch(t *testing.T) {
	var sawBusy atomic.Bool
	var sdk *SDK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawBusy.Store(sdk.Busy.Busy())
		json.NewEncoder(w).Encode(map[string]any{"subjects": []Subject{}})
	}))
	defer srv.Close()

	sdk = newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)
	// Match the server's expectation so no refresh round-trip happens.
	require.NoError(t, sdk.Session.SetAuthenticated("fresh", "refresh-token", sdk.Session.CurrentUser(), qroute.RoleUser))

	_, err := sdk.Subjects(context.Background())
	require.NoError(t, err)
	require.True(t, sawBusy.Load(), "gauge must be raised while the request is in flight")
	require.Zero(t, sdk.Busy.Outstanding())
}

func TestPipelineSkipBusyLeavesGaugeAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	sdk := newTestSDK(t, srv.URL)
	authenticate(t, sdk, qroute.RoleUser)

	var fired atomic.Bool
	sdk.Busy.OnChange(func(bool) { fired.Store(true) })

	err := sdk.Pipeline().Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health", SkipBusy: true}, nil)
	require.NoError(t, err)
	require.False(t, fired.Load())
}
