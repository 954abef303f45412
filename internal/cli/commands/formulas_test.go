package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormulasCommand(t *testing.T) {
	cmd := NewFormulasCommand()

	assert.Equal(t, "formulas", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag %q should exist", "format")
}

func TestFormulasCommandOutput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut []string
	}{
		{
			name: "table",
			args: []string{},
			wantOut: []string{
				"Δf = |ΔA| + |ΔB|",
				"Δx = least_count / k",
				"10.0000000000 ± 0.0500000000",
				"8.0000000000 ± 0.3000000000",
				"5.0000000000 ± 0.1750000000",
			},
		},
		{
			name: "markdown",
			args: []string{"--format", "markdown"},
			wantOut: []string{
				"| ---",
				"division",
				"5.0000000000 ± 0.1750000000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewFormulasCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestFormulasCommandUnknownFormat(t *testing.T) {
	cmd := NewFormulasCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--format", "csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
