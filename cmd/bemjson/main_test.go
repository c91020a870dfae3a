package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.yaml")
	tree := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(rules, []byte("rules:\n  - block: b1\n    tag: span\n"), 0644))
	require.NoError(t, os.WriteFile(tree, []byte(`{"block":"b1"}`), 0644))

	out, err := execute(t, "build", "--rules", rules, tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"block":"b1","tag":"span"}`, out)

	_, err = execute(t, "build", "--format", "xml", tree)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bemjson version: ")
}
