package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeShell struct {
	loggedIn bool
	calls    []string
	args     [][]string
	reported []error
	failWith error
}

func (f *fakeShell) isLoggedIn() bool { return f.loggedIn }
func (f *fakeShell) report(err error) { f.reported = append(f.reported, err) }

func (f *fakeShell) record(name string) func(context.Context, []string) error {
	return func(_ context.Context, args []string) error {
		f.calls = append(f.calls, name)
		f.args = append(f.args, args)
		if name == "login" {
			f.loggedIn = true
		}
		if name == "show" {
			return oneArgErr(args)
		}
		if name == "fail" {
			return f.failWith
		}
		return nil
	}
}

func oneArgErr(args []string) error {
	_, err := oneArg(args)
	return err
}

func (f *fakeShell) commands() []command {
	return []command{
		{name: "login", usage: "login", run: f.record("login")},
		{name: "show", usage: "show <id>", private: true, run: f.record("show")},
		{name: "history", usage: "history [page]", private: true, run: f.record("history")},
		{name: "fail", usage: "fail", run: f.record("fail")},
	}
}

func runLines(sh shell, lines ...string) string {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), sh, func() string { return "(s)" }, in, &out)
	return out.String()
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	sh := &fakeShell{}
	out := runLines(sh, "login", "history 2", "show abc", "", "exit", "history")

	assert.Equal(t, []string{"login", "history", "show"}, sh.calls)
	assert.Equal(t, []string{"2"}, sh.args[1])
	assert.Equal(t, []string{"abc"}, sh.args[2])
	assert.Contains(t, out, "cw (s)> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_PrivateCommandsNeedLogin(t *testing.T) {
	sh := &fakeShell{}
	out := runLines(sh, "history", "quit")

	assert.Empty(t, sh.calls)
	assert.Contains(t, out, "Please log in first")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	sh := &fakeShell{loggedIn: true}
	out := runLines(sh, "show", "frobnicate", "exit")

	assert.Contains(t, out, "Usage: show <id>")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Empty(t, sh.reported)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	sh := &fakeShell{failWith: boom}
	runLines(sh, "fail", "exit")

	assert.Equal(t, []error{boom}, sh.reported)
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	sh := &fakeShell{}
	out := runLines(sh, "login")

	assert.Equal(t, []string{"login"}, sh.calls)
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := &fakeShell{}
	var out bytes.Buffer
	runREPL(ctx, sh, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")), &out)

	assert.Empty(t, sh.calls)
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	out := runLines(&fakeShell{}, "help", "exit")
	assert.Contains(t, out, "  login\n")
	assert.NotContains(t, out, "history [page]")

	out = runLines(&fakeShell{loggedIn: true}, "help", "exit")
	assert.Contains(t, out, "history [page]")
	assert.NotContains(t, out, "  login\n")
	assert.Contains(t, out, "  fail\n")
}
