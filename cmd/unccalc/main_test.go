// Package main provides end-to-end tests for the unccalc CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/unccalc/internal/cli"
	"github.com/leapstack-labs/unccalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "unccalc v"+cli.Version)
}

func TestHelpCommand(t *testing.T) {
	out, _, err := execute(t, "", "--help")
	require.NoError(t, err)
	for _, expected := range []string{"version", "formulas", "completion", "--color"} {
		assert.Contains(t, out, expected)
	}
}

func TestInteractiveSession(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  []string
	}{
		{
			name:  "direct measurement",
			stdin: "1\n10.0\nno\n0.1\n2\n4\n",
			want:  []string{"Enter the divisor k : ", "Result: 10.0000000000 ± 0.0500000000"},
		},
		{
			name:  "addition",
			stdin: "2\n5.0\n0.1\n3.0\n0.2\n+\n4\n",
			want:  []string{"Choose operation (+ or -): ", "Result: 8.0000000000 ± 0.3000000000"},
		},
		{
			name:  "division",
			stdin: "3\n10.0\n0.1\n2.0\n0.05\n/\n4\n",
			want:  []string{"Result: 5.0000000000 ± 0.1750000000"},
		},
		{
			name:  "division by zero keeps the menu running",
			stdin: "3\n10.0\n0.1\n0\n0.05\n/\n2\n1\n0\n1\n0\n-\n4\n",
			want:  []string{"Division by Zero Error", "Result: 0.0000000000 ± 0.0000000000"},
		},
		{
			name:  "invalid selection",
			stdin: "7\r\n4\r\n",
			want:  []string{"Please select 1-4.", "Exiting on user request."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, "--color", "never")
			require.NoError(t, err)

			assert.Contains(t, out, "Possible Options For Uncertainty Calculations")
			assert.Contains(t, out, "Select (1-4): ")
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			testutil.AssertNoANSI(t, out)
		})
	}
}

func TestInteractiveSessionEndOfInput(t *testing.T) {
	out, _, err := execute(t, "2\n1\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Result:")
}

func TestMalformedNumberFails(t *testing.T) {
	out, _, err := execute(t, "2\nfive\n", "--color", "never")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed number")
	assert.NotContains(t, out, "Result:")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "1\n10\nyes\n0.5\n4\n", "-v", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Result: 10.0000000000 ± 0.5000000000")
	assert.Contains(t, errOut, "evaluation complete")
	assert.NotContains(t, out, "evaluation complete")
}

func TestInvalidColorFlag(t *testing.T) {
	_, _, err := execute(t, "4\n", "--color", "rainbow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color")
}

func TestUnexpectedArgument(t *testing.T) {
	_, _, err := execute(t, "", "compute")
	require.Error(t, err)
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "unccalc")
}

func TestColorAlwaysStylesResult(t *testing.T) {
	out, _, err := execute(t, "2\n1\n0\n1\n0\n+\n4\n", "--color", "always")
	require.NoError(t, err)
	assert.True(t, testutil.HasANSI(out), "--color always must emit escape codes")
	assert.Contains(t, out, "2.0000000000 ± 0.0000000000")
}
