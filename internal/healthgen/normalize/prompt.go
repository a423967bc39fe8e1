package normalize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter collects credentials interactively.
type Prompter interface {
	Username(def string) (string, error)
	Password() (string, error)
}

// TerminalPrompter reads from In and writes prompts to Out. When In is a
// terminal the password is read without echo.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer

	r *bufio.Reader
}

func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{In: in, Out: out, r: bufio.NewReader(in)}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Username returns def when the user enters nothing.
func (p *TerminalPrompter) Username(def string) (string, error) {
	fmt.Fprintf(p.Out, "  Username [%s]: ", def)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if u := strings.TrimSpace(line); u != "" {
		return u, nil
	}
	return def, nil
}

func (p *TerminalPrompter) Password() (string, error) {
	fmt.Fprint(p.Out, "  Password: ")
	fd := int(p.In.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return p.readLine()
}
