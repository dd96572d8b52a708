// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/conductor/cmd/cmdstate"
	"github.com/matt-FFFFFF/conductor/internal/allcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const scenarioYAML = `name: movie night
devices:
  - {name: lounge, type: light}
  - {name: office, type: printer}
steps:
  - action: set
    command: {type: light-on, device: lounge}
  - action: trigger
  - action: enqueue
    command: {type: print, device: office, text: "${var.film}"}
  - action: process
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	root := &cli.Command{
		Name:     "conductor",
		Writer:   out,
		Commands: []*cli.Command{RunCmd},
		ExitErrHandler: func(context.Context, *cli.Command, error) {
			// keep os.Exit out of tests
		},
	}

	ctx := cmdstate.WithRegistry(context.Background(), allcommands.NewRegistry())
	err := root.Run(ctx, append([]string{"conductor", "run"}, args...))

	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	reportPath := filepath.Join(dir, "report.yaml")

	out, err := runCmd(t, "-f", path, "--var", "film=alien", "--out", reportPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Scenario: movie night")
	assert.Contains(t, out, "printed alien")
	assert.Contains(t, out, "4 ok, 0 noop, 0 error, 0 skipped")

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "scenario: movie night")
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()

	failing := filepath.Join(dir, "failing.yaml")
	require.NoError(t, os.WriteFile(failing, []byte(`devices:
  - {name: office, type: printer, fail: jammed}
steps:
  - action: execute
    command: {type: print, device: office, text: A}
`), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("steps:\n  - action: dance\n"), 0o600))

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "step fails",
			args:    []string{"-f", failing},
			wantErr: "jammed",
		},
		{
			name:    "invalid scenario",
			args:    []string{"-f", invalid},
			wantErr: "unknown step action",
		},
		{
			name:    "missing file",
			args:    []string{"-f", filepath.Join(dir, "missing.yaml")},
			wantErr: "failed to fetch",
		},
		{
			name:    "bad variable",
			args:    []string{"-f", invalid, "--var", "nope"},
			wantErr: "invalid variable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCmd(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			var exitErr cli.ExitCoder
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.ExitCode())
		})
	}
}
