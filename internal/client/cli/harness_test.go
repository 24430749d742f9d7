package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/carework/internal/client/cache"
	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/client/messages"
	"github.com/dmitrijs2005/carework/internal/client/services"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

const testPrefix = "@carework:"

type testApp struct {
	*App
	router *mux.Router
	srv    *httptest.Server
	store  *kv.MemoryStore
	sess   *session.Store
	out    *bytes.Buffer
}

// newTestApp wires an App against a fake API; input feeds the prompts.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	router := mux.NewRouter()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	store := kv.NewMemoryStore()
	sess := session.NewStore(store, testPrefix)
	log := logging.Discard()
	c := client.NewHTTPClient(srv.URL, client.WithTokenSource(sess))

	out := &bytes.Buffer{}
	app := NewApp(services.New(c, sess, log, false), cache.NewInvalidator(store, sess, log),
		messages.New("en"), log, strings.NewReader(input), out)

	return &testApp{App: app, router: router, srv: srv, store: store, sess: sess, out: out}
}

func (ta *testApp) reply(method, path string, status int, body string) {
	ta.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (ta *testApp) signIn(t *testing.T) {
	t.Helper()
	s := session.Session{Token: "t1", UserID: "u1", UserName: "Ann", UserEmail: "ann@example.com"}
	require.NoError(t, ta.sess.Save(context.Background(), s))
	ta.setIdentity(&s)
}

// stubPassword makes getPassword return the given answers in order.
func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(answers) == 0 {
			return nil, io.EOF
		}
		pw := []byte(answers[0])
		answers = answers[1:]
		return pw, nil
	}
}
