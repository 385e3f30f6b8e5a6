package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestBuildConfig_FlagsOverrideFile applies only the flags that were given.
func TestBuildConfig_FlagsOverrideFile(t *testing.T) {
	cfgPath := writeFile(t, "labyrinth.json", `{"engine": "bfs", "language": "de", "workers": 3}`)

	tests := []struct {
		name    string
		args    []string
		engine  string
		lang    string
		workers int
		strict  bool
	}{
		{"file only", []string{"-config", cfgPath}, "bfs", "de", 3, false},
		{"engine flag wins", []string{"-config", cfgPath, "-engine", "gonum"}, "gonum", "de", 3, false},
		{"several flags", []string{"-config", cfgPath, "-lang", "en", "-workers", "2", "-strict-records"}, "bfs", "en", 2, true},
		{"no file", []string{"-engine", "bfs"}, "bfs", "en", 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := parseFlags(tc.args, io.Discard)
			require.NoError(t, err)
			cfg, err := buildConfig(f)
			require.NoError(t, err)

			assert.Equal(t, tc.engine, cfg.GetEngine())
			assert.Equal(t, tc.lang, cfg.GetLanguage())
			assert.Equal(t, tc.workers, cfg.GetWorkers())
			assert.Equal(t, tc.strict, cfg.GetStrictRecords())
		})
	}
}

func TestBuildConfig_InvalidFlag(t *testing.T) {
	f, err := parseFlags([]string{"-engine", "astar"}, io.Discard)
	require.NoError(t, err)
	_, err = buildConfig(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine")
}

func TestParseFlags_Input(t *testing.T) {
	f, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", f.input)

	f, err = parseFlags([]string{"-v", "mazes.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "mazes.txt", f.input)
	assert.True(t, f.verbose)

	var usage bytes.Buffer
	_, err = parseFlags([]string{"a.txt", "b.txt"}, &usage)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, usage.String(), "usage: labyrinth")

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRun(t *testing.T) {
	input := writeFile(t, "input.txt", "Mazes\n1 3 3\nS##\n#.#\n.#E\n\n1 1 3\nS.E\n\n0 0 0\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-lang", "de", "-v", input}, &stdout, &stderr))
	assert.Equal(t, "Gefangen :-(\nEntkommen in 2 Minute(n)!\n", stdout.String())
	assert.Contains(t, stderr.String(), "maze 2: 1x1x3")

	err := run(context.Background(), []string{"-strict-records", input}, &bytes.Buffer{}, io.Discard)
	assert.Error(t, err)

	err = run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")}, &bytes.Buffer{}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
