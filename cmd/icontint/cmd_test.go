package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := newRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errBuf.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "icontint dev")
}

func TestRecolorCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "recolor", "tablets", "--background", "red")

	require.NoError(t, err)
	assert.Contains(t, out, `fill="#ef4444"`)
	assert.NotContains(t, out, `fill="#009dff"`)
}

func TestRecolorCommandWritesFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "tablets.svg")
	_, _, err := execute(t, "recolor", "tablets", "--background", "#336699", "--out", outPath)

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fill="#336699"`)
}

func TestRecolorCommandDiff(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "recolor", "syrup", "--background", "purple", "--diff")

	require.NoError(t, err)
	assert.Contains(t, out, "--- syrup (template)")
	assert.Contains(t, out, "+++ syrup (recolored)")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "+")
}

func TestRecolorCommandUnknownIcon(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "recolor", "scrolls")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRecolorCommandInvalidColor(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "recolor", "tablets", "--background", "plaid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color")
}

func TestIconsCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "icons")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 14)
	assert.Contains(t, out, "tablets")
	assert.Contains(t, out, "inhalers")
	assert.Contains(t, out, "#b8b8b8")
}

func TestBatchCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	requestsPath := filepath.Join(dir, "requests.json")
	requests := `[
  {"icon_key": "tablets", "colors": {"background": "green"}},
  {"icon_key": "syrup", "colors": {}}
]`
	require.NoError(t, os.WriteFile(requestsPath, []byte(requests), 0o644))

	outDir := filepath.Join(dir, "out")
	out, _, err := execute(t, "batch", "--requests", requestsPath, "--out-dir", outDir, "--sequential")

	require.NoError(t, err)
	assert.Contains(t, out, "tablets")

	data, err := os.ReadFile(filepath.Join(outDir, "tablets.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `fill="#10b981"`)

	_, err = os.Stat(filepath.Join(outDir, "syrup.svg"))
	require.NoError(t, err)
}

func TestBatchCommandReportsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	requestsPath := filepath.Join(dir, "requests.json")
	require.NoError(t, os.WriteFile(requestsPath, []byte(`[{"icon_key": "gummies", "colors": {}}]`), 0o644))

	_, stderr, err := execute(t, "batch", "--requests", requestsPath, "--out-dir", filepath.Join(dir, "out"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 requests failed")
	assert.Contains(t, stderr, "gummies")
}

func TestBatchCommandMalformedRequests(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	requestsPath := filepath.Join(dir, "requests.json")
	require.NoError(t, os.WriteFile(requestsPath, []byte("{nope"), 0o644))

	_, _, err := execute(t, "batch", "--requests", requestsPath)

	require.Error(t, err)
}

func TestRootShowsHelp(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "recolor")
	assert.Contains(t, out, "serve")
}
