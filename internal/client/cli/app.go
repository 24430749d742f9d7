package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/cache"
	"github.com/dmitrijs2005/carework/internal/client/messages"
	"github.com/dmitrijs2005/carework/internal/client/services"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const (
	onlineCheckInterval = 15 * time.Second
	onlineCheckTimeout  = 3 * time.Second
	defaultPageSize     = 10
)

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// App is the interactive client. It holds the signed-in identity for the
// prompt; the session itself lives in the session store.
type App struct {
	svc    *services.Services
	cache  *cache.Invalidator
	tr     *messages.Translator
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	identity *session.Session
}

func NewApp(svc *services.Services, inv *cache.Invalidator, tr *messages.Translator, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		svc:    svc,
		cache:  inv,
		tr:     tr,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run purges legacy cache entries, restores a saved session, starts the
// connectivity watcher and blocks in the REPL until the user exits or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	a.cache.PurgeLegacyDomainKeys(ctx)
	a.restoreSession(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, onlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to CareWork CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) restoreSession(ctx context.Context) {
	s, err := a.svc.Auth.CurrentSession(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.log.Warn(ctx, "session restore failed", "error", err)
		}
		return
	}
	a.setIdentity(&s)
	if exp, ok, err := session.ExpiryOf(s.Token); err == nil && ok && exp.Before(time.Now()) {
		fmt.Fprintln(a.out, "Your session has expired, please log in again")
	}
}

func (a *App) setIdentity(s *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.identity = s
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity != nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.identity != nil {
		s = a.identity.UserName + " "
	}
	if a.mode != ModeUnknown {
		s += string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the API until ctx is done and switches
// the mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// probe pings the API once and records the resulting mode.
func (a *App) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, onlineCheckTimeout)
	defer cancel()

	ok := a.svc.Auth.Ping(ctx)
	if ok {
		a.setMode(ModeOnline)
	} else {
		a.setMode(ModeOffline)
	}
	return ok
}

// report prints err through the translator.
func (a *App) report(err error) {
	fmt.Fprintln(a.out, "Error:", a.tr.Message(err))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
