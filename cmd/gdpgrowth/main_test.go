package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixture = filepath.Join("..", "..", "internal", "parser", "testdata", "figure_data.txt")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	out, err := execute(t, "--input", fixture, "--output-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Reading data...")
	assert.Contains(t, out, "Creating Excel file...")
	assert.Contains(t, out, "Creating panel plots...")
	for _, name := range []string{workbookFile, panelFile, panelScenarioFile, summaryFile} {
		path := filepath.Join(dir, name)
		assert.Contains(t, out, "Saved "+path)
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, workbookFile))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 4)
}

func TestRunFailsWithoutPartialOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "figure_data.txt")
	data := "High-income group\nNo growth\t0\t1\t1\t1\t1\n"
	require.NoError(t, os.WriteFile(input, []byte(data), 0o644))
	outDir := filepath.Join(dir, "output")

	_, err := execute(t, "--input", input, "--output-dir", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingInput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "output")
	_, err := execute(t, "--input", filepath.Join(t.TempDir(), "nope.txt"), "--output-dir", outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunRejectsArguments(t *testing.T) {
	_, err := execute(t, "extra")
	require.Error(t, err)
}

func TestSummary(t *testing.T) {
	out, err := execute(t, "summary", "--input", fixture)
	require.NoError(t, err)

	assert.Contains(t, out, "Data shape: (4, 6, 5)")
	assert.Contains(t, out, "High-income group (per-capita GDP):")
	assert.Contains(t, out, "41200.0")
	assert.Contains(t, out, "Low-income group (percent annual growth rates):")
	assert.Equal(t, 4, strings.Count(out, "warming loss"))
}

func TestScenarioOverride(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("growth: []\n"), 0o644))

	_, err := execute(t, "--input", fixture, "--output-dir", filepath.Join(dir, "out"), "--scenarios", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "growth scenarios")
}
