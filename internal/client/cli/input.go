package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carework/internal/client/models"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The result is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a password from the terminal
// without echo. The caller should wipe the returned slice.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetScore asks for a 1..5 score until a valid one is given. An empty answer
// returns def when def is itself a valid score.
func GetScore(reader *bufio.Reader, prompt string, def int, w io.Writer) (int, error) {
	if def != 0 {
		prompt = fmt.Sprintf("%s [%d]", prompt, def)
	}
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s (%d-%d)", prompt, models.MinScore, models.MaxScore), w)
		if err != nil {
			return 0, err
		}
		if text == "" && models.ValidateScore("score", def) == nil {
			return def, nil
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			err = models.ValidateScore("score", n)
		}
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(w, "Please enter a number between %d and %d\n", models.MinScore, models.MaxScore)
	}
}

// GetYesNo returns true for an answer starting with y or Y.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	text, err := GetSimpleText(reader, prompt+" (y/N)", w)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(text), "y"), nil
}
