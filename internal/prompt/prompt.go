// ABOUTME: Interactive input provider for command flows
// ABOUTME: Terminal implementation plus a scripted one for tests

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter supplies interactive answers to command flows. Handlers depend on
// this capability instead of the terminal so tests can script input.
type Prompter interface {
	// Line asks for a free-text value. An empty answer yields defaultVal.
	Line(label, defaultVal string) (string, error)
	// LineSuggest asks for a free-text value and offers completion hints.
	LineSuggest(label string, suggestions []string) (string, error)
	// Secret asks for a value without echoing it.
	Secret(label string) (string, error)
}

// Terminal is a Prompter backed by stdin/stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewTerminal creates a Prompter reading from stdin and writing prompts to
// stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		fd:  int(os.Stdin.Fd()),
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Line implements Prompter.
func (t *Terminal) Line(label, defaultVal string) (string, error) {
	if defaultVal != "" {
		fmt.Fprintf(t.out, "%s [%s] ", label, defaultVal)
	} else {
		fmt.Fprintf(t.out, "%s ", label)
	}
	answer, err := t.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultVal, nil
	}
	return answer, nil
}

// LineSuggest implements Prompter. Suggestions are shown as a hint line above
// the prompt.
func (t *Terminal) LineSuggest(label string, suggestions []string) (string, error) {
	if len(suggestions) > 0 {
		fmt.Fprintf(t.out, "suggestions: %s\n", strings.Join(suggestions, ", "))
	}
	return t.Line(label, "")
}

// Secret implements Prompter. On a real terminal the input is masked; when
// stdin is piped it falls back to a plain read.
func (t *Terminal) Secret(label string) (string, error) {
	fmt.Fprintf(t.out, "%s ", label)
	if term.IsTerminal(t.fd) {
		raw, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return t.readLine()
}

// Script is a Prompter fed from a fixed answer sequence, for tests.
type Script struct {
	answers []string
	next    int
}

// NewScript creates a scripted Prompter that returns the given answers in
// order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

func (s *Script) take() (string, error) {
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Line implements Prompter.
func (s *Script) Line(label, defaultVal string) (string, error) {
	answer, err := s.take()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultVal, nil
	}
	return answer, nil
}

// LineSuggest implements Prompter.
func (s *Script) LineSuggest(label string, suggestions []string) (string, error) {
	return s.Line(label, "")
}

// Secret implements Prompter.
func (s *Script) Secret(label string) (string, error) {
	return s.take()
}
