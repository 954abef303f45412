package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/unccalc/internal/uncertainty"
	"github.com/spf13/cobra"
)

// rule describes one propagation rule and a worked example of it.
type rule struct {
	menu        string
	operation   string
	value       string
	uncertainty string
	example     func() (uncertainty.Result, error)
	inputs      string
}

var rules = []rule{
	{
		menu:        "1",
		operation:   "direct (least count)",
		value:       "x",
		uncertainty: "Δx = least_count / k",
		inputs:      "x=10, least_count=0.1, k=2",
		example: func() (uncertainty.Result, error) {
			return uncertainty.Direct(uncertainty.DirectInput{Value: 10, LeastCount: 0.1, K: 2})
		},
	},
	{
		menu:        "2",
		operation:   "addition",
		value:       "A + B",
		uncertainty: "Δf = |ΔA| + |ΔB|",
		inputs:      "A=5±0.1, B=3±0.2",
		example: func() (uncertainty.Result, error) {
			return uncertainty.SumDiff(
				uncertainty.Measurement{Value: 5, Uncertainty: 0.1},
				uncertainty.Measurement{Value: 3, Uncertainty: 0.2},
				uncertainty.OpAdd)
		},
	},
	{
		menu:        "2",
		operation:   "subtraction",
		value:       "A - B",
		uncertainty: "Δf = |ΔA| + |ΔB|",
		inputs:      "A=5±0.1, B=3±0.2",
		example: func() (uncertainty.Result, error) {
			return uncertainty.SumDiff(
				uncertainty.Measurement{Value: 5, Uncertainty: 0.1},
				uncertainty.Measurement{Value: 3, Uncertainty: 0.2},
				uncertainty.OpSub)
		},
	},
	{
		menu:        "3",
		operation:   "multiplication",
		value:       "A · B",
		uncertainty: "Δf = |B|·|ΔA| + |A|·|ΔB|",
		inputs:      "A=2±0.1, B=3±0.2",
		example: func() (uncertainty.Result, error) {
			return uncertainty.ProductQuotient(
				uncertainty.Measurement{Value: 2, Uncertainty: 0.1},
				uncertainty.Measurement{Value: 3, Uncertainty: 0.2},
				uncertainty.OpMul)
		},
	},
	{
		menu:        "3",
		operation:   "division",
		value:       "A / B",
		uncertainty: "Δf = |ΔA|/|B| + |A|·|ΔB|/B²",
		inputs:      "A=10±0.1, B=2±0.05",
		example: func() (uncertainty.Result, error) {
			return uncertainty.ProductQuotient(
				uncertainty.Measurement{Value: 10, Uncertainty: 0.1},
				uncertainty.Measurement{Value: 2, Uncertainty: 0.05},
				uncertainty.OpDiv)
		},
	},
}

// NewFormulasCommand creates the formulas command.
func NewFormulasCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "Show the propagation rule used by each calculation",
		Long: `Show the first-order propagation rule behind each menu entry.

For f(A, B) the propagated absolute uncertainty is approximated by
|∂f/∂A|·ΔA + |∂f/∂B|·ΔB. For products and quotients this is the same as
adding relative uncertainties.`,
		Example: `  unccalc formulas
  unccalc formulas --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderRules(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|markdown)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func renderRules(w io.Writer, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Menu", "Operation", "Value", "Uncertainty", "Example", "Result"})

	for _, r := range rules {
		res, err := r.example()
		if err != nil {
			return fmt.Errorf("%s example: %w", r.operation, err)
		}
		t.AppendRow(table.Row{r.menu, r.operation, r.value, r.uncertainty, r.inputs, res.String()})
	}

	switch format {
	case "table", "":
		t.Render()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format %q (want table or markdown)", format)
	}
	return nil
}
