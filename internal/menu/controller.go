// Package menu drives the interactive uncertainty calculator: it shows the
// option menu, reads a selection, gathers each evaluator's inputs in a fixed
// prompt order and prints the formatted result.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/leapstack-labs/unccalc/internal/uncertainty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMalformedNumber is returned when a prompt expecting a real number gets
// something else. It is not recoverable: Run stops and returns it.
var ErrMalformedNumber = errors.New("malformed number")

// DefaultPrompt is shown when asking for a menu selection.
const DefaultPrompt = "Select (1-4): "

// User-visible messages.
const (
	menuText = "1. Direct Measurement\n" +
		"2. Addition / Subtraction\n" +
		"3. Multiplication / Division\n" +
		"4. Exit"
	menuTitle         = "Possible Options For Uncertainty Calculations"
	msgGuidance       = "Please select 1-4."
	msgExit           = "Exiting on user request."
	msgInvalidOp      = "Invalid operation."
	msgZeroK          = "Zero Error Division"
	msgDivisionByZero = "Division by Zero Error"
)

// State is the controller's lifecycle state.
type State int

// Controller states.
const (
	Running State = iota
	Terminated
)

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Prompt string
	Styles *Styles
	Logger *slog.Logger
}

// Controller owns the menu loop. It is not safe for concurrent use.
type Controller struct {
	in     LineReader
	out    io.Writer
	prompt string
	styles *Styles
	logger *slog.Logger
	state  State
	lower  cases.Caser
}

// NewController creates a controller reading from in and writing the
// transcript to out.
func NewController(in LineReader, out io.Writer, opts Options) *Controller {
	c := &Controller{
		in:     in,
		out:    out,
		prompt: opts.Prompt,
		styles: opts.Styles,
		logger: opts.Logger,
		state:  Running,
		lower:  cases.Lower(language.Und),
	}
	if c.prompt == "" {
		c.prompt = DefaultPrompt
	}
	if c.styles == nil {
		c.styles = NewStyles(lipgloss.NewRenderer(out))
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// State reports whether the loop is still running.
func (c *Controller) State() State {
	return c.state
}

// Run shows the menu and dispatches selections until the user exits or the
// input ends. It returns nil in both cases; a malformed number or a read
// failure is returned as an error.
func (c *Controller) Run(ctx context.Context) error {
	for c.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.showMenu()
		line, err := c.ask(c.prompt)
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			c.logger.Debug("input closed at menu")
			c.state = Terminated
			return nil
		case err != nil:
			return fmt.Errorf("failed to read selection: %w", err)
		}

		if err := c.dispatch(ParseSelection(line)); err != nil {
			return err
		}
	}
	return nil
}

// evaluator is one calculator entry: it gathers inputs and computes a result.
type evaluator struct {
	name string
	// zeroDivision is printed when the evaluator reports ErrDivisionByZero.
	zeroDivision string
	run          func() (uncertainty.Result, error)
}

func (c *Controller) dispatch(sel Selection) error {
	c.logger.Debug("menu selection", "selection", sel.String())

	switch sel {
	case SelectDirect:
		return c.evaluate(evaluator{name: "direct", zeroDivision: msgZeroK, run: c.direct})
	case SelectSumDiff:
		return c.evaluate(evaluator{name: "sum-difference", run: c.sumDiff})
	case SelectProductQuotient:
		return c.evaluate(evaluator{name: "product-quotient", zeroDivision: msgDivisionByZero, run: c.productQuotient})
	case SelectExit:
		c.println(c.styles.Muted.Render(msgExit))
		c.state = Terminated
	default:
		c.println(c.styles.Error.Render(msgGuidance))
	}
	return nil
}

func (c *Controller) evaluate(ev evaluator) error {
	res, err := ev.run()
	if err == nil {
		c.logger.Debug("evaluation complete",
			"evaluator", ev.name,
			"value", res.Value,
			"uncertainty", res.Uncertainty,
			"relative", res.Relative())
		c.println("\nResult: " + c.styles.Result.Render(res.String()))
		return nil
	}

	switch {
	case errors.Is(err, uncertainty.ErrDivisionByZero):
		c.println(c.styles.Error.Render(ev.zeroDivision))
	case errors.Is(err, uncertainty.ErrInvalidOperation):
		c.println(c.styles.Error.Render(msgInvalidOp))
	case errors.Is(err, readline.ErrInterrupt):
		c.println("")
	case errors.Is(err, io.EOF):
		c.state = Terminated
	default:
		return fmt.Errorf("%s: %w", ev.name, err)
	}
	c.logger.Debug("evaluation aborted", "evaluator", ev.name, "error", err)
	return nil
}

func (c *Controller) direct() (uncertainty.Result, error) {
	c.heading("Direct Measurement")

	var in uncertainty.DirectInput
	var err error
	if in.Value, err = c.askFloat("Enter measured value: "); err != nil {
		return uncertainty.Result{}, err
	}
	mode, err := c.ask("Do you want to enter the uncertainty directly? (yes/no): ")
	if err != nil {
		return uncertainty.Result{}, err
	}
	in.Direct = c.lower.String(strings.TrimSpace(mode)) == "yes"

	if in.Direct {
		if in.Uncertainty, err = c.askFloat("Enter the measurement uncertainty: "); err != nil {
			return uncertainty.Result{}, err
		}
	} else {
		if in.LeastCount, err = c.askFloat("Enter the instrument's smallest division (least count): "); err != nil {
			return uncertainty.Result{}, err
		}
		if in.K, err = c.askFloat("Enter the divisor k : "); err != nil {
			return uncertainty.Result{}, err
		}
	}
	return uncertainty.Direct(in)
}

func (c *Controller) sumDiff() (uncertainty.Result, error) {
	c.heading("Addition / Subtraction")

	a, b, err := c.askOperands()
	if err != nil {
		return uncertainty.Result{}, err
	}
	op, err := c.askOperator("Choose operation (+ or -): ")
	if err != nil {
		return uncertainty.Result{}, err
	}
	return uncertainty.SumDiff(a, b, op)
}

func (c *Controller) productQuotient() (uncertainty.Result, error) {
	c.heading("Multiplication / Division")

	a, b, err := c.askOperands()
	if err != nil {
		return uncertainty.Result{}, err
	}
	op, err := c.askOperator("Choose operation (* or /): ")
	if err != nil {
		return uncertainty.Result{}, err
	}
	return uncertainty.ProductQuotient(a, b, op)
}

// askOperands reads A, ΔA, B, ΔB in that order.
func (c *Controller) askOperands() (a, b uncertainty.Measurement, err error) {
	fields := []struct {
		prompt string
		dst    *float64
	}{
		{"Enter value A: ", &a.Value},
		{"Enter uncertainty of A: ", &a.Uncertainty},
		{"Enter value B: ", &b.Value},
		{"Enter uncertainty of B: ", &b.Uncertainty},
	}
	for _, f := range fields {
		if *f.dst, err = c.askFloat(f.prompt); err != nil {
			return a, b, err
		}
	}
	return a, b, nil
}

// askOperator reads an operator token. Unknown tokens come back as
// OpInvalid so the evaluator reports them.
func (c *Controller) askOperator(prompt string) (uncertainty.Operator, error) {
	token, err := c.ask(prompt)
	if err != nil {
		return uncertainty.OpInvalid, err
	}
	op, _ := uncertainty.ParseOperator(token)
	return op, nil
}

func (c *Controller) askFloat(prompt string) (float64, error) {
	line, err := c.ask(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedNumber, line, err)
	}
	return v, nil
}

func (c *Controller) ask(prompt string) (string, error) {
	c.in.SetPrompt(prompt)
	return c.in.Readline()
}

func (c *Controller) showMenu() {
	c.println("\n" + c.styles.Heading.Render(menuTitle))
	for _, line := range strings.Split(menuText, "\n") {
		c.println(c.styles.Option.Render(line))
	}
}

func (c *Controller) heading(title string) {
	c.println("\n" + c.styles.Heading.Render(title))
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
