package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/unccalc/internal/cli/config"
	"github.com/leapstack-labs/unccalc/internal/menu"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// configKey is used to store config in context.
type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		LogLevel: config.DefaultLogLevel,
		Color:    config.DefaultColor,
		Prompt:   config.DefaultPrompt,
	}
}

// runSession runs the interactive menu on the command's streams.
func runSession(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := config.GetLogger(ctx)
	out := cmd.OutOrStdout()

	in, closeIn, err := newLineReader(cmd.InOrStdin(), out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeIn()

	ctrl := menu.NewController(in, out, menu.Options{
		Prompt: cfg.Prompt,
		Styles: menu.NewStyles(newRenderer(out, cfg.Color)),
		Logger: logger,
	})
	logger.Debug("session started")
	return ctrl.Run(ctx)
}

// newLineReader uses readline when in is an interactive terminal and a plain
// line scanner otherwise.
func newLineReader(in io.Reader, out, errOut io.Writer) (menu.LineReader, func(), error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := menu.NewTerminalReader(f, out, errOut)
		if err != nil {
			return nil, nil, err
		}
		return rl, func() { _ = rl.Close() }, nil
	}
	return menu.NewLineReader(in, out), func() {}, nil
}

func newRenderer(out io.Writer, color string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	switch color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}
