package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasalvit/stitcher"
)

func execute(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStdout(t *testing.T) {
	out, _, err := execute("-o", "-", "H 16 L 7,1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "Made with circle-stitcher "+version)
	require.Contains(t, out, projectURL)
	require.Contains(t, out, "Instructions: H 16 L 7,1")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "out.svg")
	pngPath := filepath.Join(dir, "out.png")
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("chord_front_color: \"#00ff00\"\n"), 0o644))

	_, logs, err := execute("--mm", "-v", "-o", svgPath, "--png", pngPath, "--theme", themePath,
		"H 40 OC 30 L 13 ; L 11 S 1")
	require.NoError(t, err)
	require.Contains(t, logs, "parsed 2 sequence(s) on 40 holes")

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	require.Contains(t, string(data), ".front { stroke: #00ff00;")
	require.Contains(t, string(data), "mm</text>")

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestErrors(t *testing.T) {
	tests := []struct {
		Description string
		Args        []string
	}{
		{"missing out", []string{"H 16 L 1"}},
		{"missing commands", []string{"-o", "-"}},
		{"both units", []string{"--mm", "--inch", "-o", "-", "L 1"}},
		{"syntax", []string{"-o", "-", "H 16 Q 1"}},
		{"domain", []string{"-o", "-", "K 1.5 L 1"}},
		{"configuration", []string{"-o", "-", "H 0 L 1"}},
		{"missing theme", []string{"-o", "-", "--theme", "does-not-exist.yaml", "L 1"}},
	}

	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			out, _, err := execute(test.Args...)
			require.Error(t, err)
			require.Empty(t, out)
		})
	}

	_, _, err := execute("-o", "-", "K 1.5 L 1")
	require.ErrorIs(t, err, stitcher.ErrDomain)
}
