package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of user input after showing a prompt.
// *readline.Instance satisfies it.
//
// Readline returns io.EOF when input is exhausted and readline.ErrInterrupt
// when the user presses Ctrl-C.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewTerminalReader returns a readline instance for an interactive terminal.
// The caller must Close it.
func NewTerminalReader(in io.ReadCloser, out, errOut io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		Stderr:          errOut,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    -1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal input: %w", err)
	}
	return rl, nil
}

// scanReader serves piped or redirected input line by line.
type scanReader struct {
	sc     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewLineReader returns a LineReader that writes prompts to out and reads
// newline-terminated lines from in.
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	return &scanReader{sc: bufio.NewScanner(in), out: out}
}

func (r *scanReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *scanReader) Readline() (string, error) {
	_, _ = fmt.Fprint(r.out, r.prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}
