package testutil

import (
	"io"

	"github.com/chzyer/readline"
)

// Interrupt is a scripted line that makes ScriptedReader report Ctrl-C.
const Interrupt = "\x03"

// ScriptedReader replays a fixed list of answers and records every prompt it
// was asked with. When the script runs out it returns io.EOF.
type ScriptedReader struct {
	lines   []string
	pos     int
	prompt  string
	Prompts []string
}

// NewScriptedReader returns a reader that answers with lines in order.
func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{lines: lines}
}

// SetPrompt records the prompt for the next Readline call.
func (r *ScriptedReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

// Readline returns the next scripted answer.
func (r *ScriptedReader) Readline() (string, error) {
	r.Prompts = append(r.Prompts, r.prompt)
	if r.pos >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.pos]
	r.pos++
	if line == Interrupt {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

// Remaining reports how many scripted answers were not consumed.
func (r *ScriptedReader) Remaining() int {
	return len(r.lines) - r.pos
}
