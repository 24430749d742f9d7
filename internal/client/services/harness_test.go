package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// ---- fake backend ----

type captured struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]any
}

type backend struct {
	t      *testing.T
	router *mux.Router
	srv    *httptest.Server

	mu       sync.Mutex
	requests []captured
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{t: t, router: mux.NewRouter()}
	b.router.Use(b.capture)
	b.srv = httptest.NewServer(b.router)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) capture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))

		c := captured{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Auth: r.Header.Get("Authorization")}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.Body)
		}
		b.mu.Lock()
		b.requests = append(b.requests, c)
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// reply registers a canned response for method+path.
func (b *backend) reply(method, path string, status int, body string) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (b *backend) last() captured {
	b.t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(b.t, b.requests, "no request reached the backend")
	return b.requests[len(b.requests)-1]
}

func (b *backend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// ---- wiring ----

type env struct {
	backend *backend
	store   *kv.MemoryStore
	session *session.Store
	client  *client.HTTPClient
	logs    *bytes.Buffer
	log     logging.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	b := newBackend(t)
	store := kv.NewMemoryStore()
	sess := session.NewStore(store, "")
	logs := &bytes.Buffer{}
	log := logging.New(logging.FormatText, "debug", logs)
	c := client.NewHTTPClient(b.srv.URL, client.WithTokenSource(sess), client.WithLogger(log))
	return &env{backend: b, store: store, session: sess, client: c, logs: logs, log: log}
}

func (e *env) keys(t *testing.T) []string {
	t.Helper()
	k, err := e.store.Keys(context.Background())
	require.NoError(t, err)
	return k
}

func (e *env) login(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, e.session.Save(context.Background(), session.Session{
		Token: token, UserID: "u1", UserName: "Ann", UserEmail: "a@b.com",
	}))
}

// ---- fake client ----

// fakeClient implements client.Client for unit tests of the façades.
type fakeClient struct {
	// behaviour
	Err     error
	Body    string
	Healthy bool

	// captured
	Calls []client.Request
}

func (f *fakeClient) Do(_ context.Context, r client.Request, out any) error {
	f.Calls = append(f.Calls, r)
	if f.Err != nil {
		return f.Err
	}
	if out == nil || f.Body == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.Body), out)
}

func (f *fakeClient) CheckHealth(context.Context) bool { return f.Healthy }
