package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("usage")

// command is one REPL verb. Private commands need a signed-in user.
type command struct {
	name    string
	usage   string
	private bool
	run     func(ctx context.Context, args []string) error
}

// shell is the surface runREPL needs. App satisfies it; tests stub it.
type shell interface {
	isLoggedIn() bool
	commands() []command
	report(err error)
}

// runREPL reads a line, dispatches the first token to the matching command
// and reports its error. It returns on EOF, on "exit" / "quit" or when ctx is
// done.
//
// "help" lists the commands available in the current state: public ones when
// signed out, private ones when signed in.
func runREPL(ctx context.Context, sh shell, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	byName := make(map[string]command)
	for _, c := range sh.commands() {
		byName[c.name] = c
	}

	for ctx.Err() == nil {
		fmt.Fprintf(w, "cw %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(sh, w)
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		c, ok := byName[name]
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}
		if c.private && !sh.isLoggedIn() {
			fmt.Fprintln(w, "Please log in first")
			continue
		}
		if err := c.run(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintln(w, "Usage:", c.usage)
				continue
			}
			sh.report(err)
		}
	}
}

func printHelp(sh shell, w io.Writer) {
	loggedIn := sh.isLoggedIn()
	fmt.Fprintln(w, "Available commands:")
	for _, c := range sh.commands() {
		if c.private && !loggedIn {
			continue
		}
		if loggedIn && !c.private && (c.name == "login" || c.name == "register") {
			continue
		}
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
	fmt.Fprintln(w, "  exit")
}
