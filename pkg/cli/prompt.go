package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. Pressing Enter without an answer
	// returns defaultYes.
	Confirm(question string, defaultYes bool) (bool, error)
	// Password reads a secret without echoing it.
	Password(prompt string) (string, error)
}

// errNoAnswer is returned when input ends before an answer is given.
var errNoAnswer = errors.New("no answer given")

// newPrompter uses interactive forms when stdin is a terminal and plain
// line-based prompts otherwise (pipes, tests).
func newPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &formPrompter{}
	}
	return newLinePrompter(in, out)
}

// formPrompter renders prompts with huh.
type formPrompter struct{}

func (p *formPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	answer := defaultYes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}

func (p *formPrompter) Password(prompt string) (string, error) {
	var secret string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(prompt).
				EchoMode(huh.EchoModePassword).
				Value(&secret),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return secret, nil
}

// linePrompter reads answers line by line.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

var yesNoAnswers = map[string]bool{
	"yes": true, "ye": true, "y": true,
	"no": false, "n": false,
}

func (p *linePrompter) Confirm(question string, defaultYes bool) (bool, error) {
	suffix := " [y/N] "
	if defaultYes {
		suffix = " [Y/n] "
	}

	for {
		fmt.Fprint(p.out, question+suffix)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "" {
			return defaultYes, nil
		}
		if answer, ok := yesNoAnswers[choice]; ok {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please respond with 'yes' or 'no' (or 'y' or 'n').")
	}
}

func (p *linePrompter) Password(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine()
	fmt.Fprintln(p.out)
	return line, err
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; input that ends before any text
// yields errNoAnswer.
func (p *linePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errNoAnswer
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
