package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/numflow/internal/config"
	"github.com/standardbeagle/numflow/internal/pipeline"
)

// TestMain verifies no goroutines leak across CLI runs.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runApp executes the CLI in-process and captures its output.
func runApp(args ...string) (string, error) {
	var buf bytes.Buffer
	app := newApp(&buf)
	err := app.Run(append([]string{"numflow"}, args...))
	return buf.String(), err
}

// TestRunDefaultSequence verifies the exact four-line contract when no
// config file exists.
func TestRunDefaultSequence(t *testing.T) {
	missing := filepath.Join(t.TempDir(), config.DefaultPath)

	out, err := runApp("--config", missing)
	require.NoError(t, err)

	expected := strings.Join([]string{
		`Original numbers: {"1", "2", "3", "4", "5", "6"}`,
		`Even numbers: {"2", "4", "6"}`,
		`Squared even numbers: {"4", "16", "36"}`,
		`Sum of squared even numbers: 56`,
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

// TestRunWithConfigFile verifies the pipeline runs over numbers from a
// config file.
func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("numbers = [2, 3, 10]\n"), 0644))

	out, err := runApp("--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, `Even numbers: {"2", "10"}`)
	assert.Contains(t, out, `Squared even numbers: {"4", "100"}`)
	assert.Contains(t, out, "Sum of squared even numbers: 104")
}

// TestRunJSON verifies --json emits a decodable report with the same
// values as the text output.
func TestRunJSON(t *testing.T) {
	missing := filepath.Join(t.TempDir(), config.DefaultPath)

	out, err := runApp("--config", missing, "--json")
	require.NoError(t, err)

	var report pipeline.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, report.Input)
	assert.Equal(t, []int{2, 4, 6}, report.Evens)
	assert.Equal(t, []int{4, 16, 36}, report.SquaredEvens)
	assert.Equal(t, 56, report.Sum)
}

// TestRunBadConfig verifies a malformed config file surfaces as an
// error.
func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("numbers = \"nope\"\n"), 0644))

	_, err := runApp("--config", path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

// TestVersionCommand tests the version subcommand.
func TestVersionCommand(t *testing.T) {
	out, err := runApp("version")
	require.NoError(t, err)
	assert.Contains(t, out, "numflow 0.1.0")
}

// TestConfigInitAndShow tests the config command group end to end.
func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultPath)

	out, err := runApp("config", "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created: "+path)

	// Re-running without --force must refuse to overwrite
	_, err = runApp("config", "init", "--output", path)
	assert.Error(t, err)

	_, err = runApp("config", "init", "--output", path, "--force")
	require.NoError(t, err)

	out, err = runApp("--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "numbers")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "6")
}
