package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustickingdom/talentcalc/internal/application"
)

const scenarioA = `judges:
  - creativity: 8
    quality: 6
    special_criteria: [4]
audience:
  full: {voters: 10, points: 70}
`

// clearEnv keeps the developer's environment out of the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		application.EnvLocale, application.EnvTheme, application.EnvLogLevel,
		application.EnvColor, application.EnvMode,
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitGeneral
}

func TestCalculate_Text(t *testing.T) {
	path := writeFile(t, "a.yaml", scenarioA)

	out, _, err := run(t, "", "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "6.25 out of 10.00")
	assert.Contains(t, out, "Judges' Score (75%): 4.50")
}

func TestCalculate_ClassicModeFlag(t *testing.T) {
	path := writeFile(t, "a.yaml", strings.Replace(scenarioA, "special_criteria: [4]", "special_criteria: [4]\n    weight: half", 1))

	weighted, _, err := run(t, "", "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, weighted, "4.00 out of 10.00")

	classic, _, err := run(t, "", "--mode", "classic", "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, classic, "6.25 out of 10.00")
}

// TestCalculate_MixedCaseFlags verifies option flags match their values
// case-insensitively, as the config file and environment do.
func TestCalculate_MixedCaseFlags(t *testing.T) {
	path := writeFile(t, "a.yaml", strings.Replace(scenarioA, "special_criteria: [4]", "special_criteria: [4]\n    weight: half", 1))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "theme", args: []string{"--theme", "Dark", "calculate", path}, want: "4.00 out of 10.00"},
		{name: "mode", args: []string{"--mode", "Classic", "calculate", path}, want: "6.25 out of 10.00"},
		{name: "log level", args: []string{"--log-level", "DEBUG", "calculate", path}, want: "4.00 out of 10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalculate_JSONBatch(t *testing.T) {
	a := writeFile(t, "a.yaml", scenarioA)
	empty := writeFile(t, "empty.yaml", "audience:\n  full: {voters: 10, points: 70}\n")

	out, stderr, err := run(t, "", "calculate", "--format", "json", a, empty)
	require.NoError(t, err)

	var decoded []struct {
		Source string         `json:"source"`
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, a, decoded[0].Source)
	assert.Equal(t, 6.25, decoded[0].Result["final_score"])
	assert.Nil(t, decoded[1].Result["final_score"], "NaN is written as null")
	assert.Contains(t, stderr, "final score is undefined")
}

func TestCalculate_Metrics(t *testing.T) {
	path := writeFile(t, "a.yaml", scenarioA)

	_, stderr, err := run(t, "", "--metrics", "calculate", path, path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "talentcalc_calculations_total")
	assert.Contains(t, stderr, `status="ok"`)
}

func TestCalculate_Errors(t *testing.T) {
	good := writeFile(t, "a.yaml", scenarioA)
	badWeight := writeFile(t, "bad.yaml", "judges:\n  - weight: double\n")
	badConfig := writeFile(t, "config.yaml", "rules:\n  judges_share: 0.9\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{name: "missing file", args: []string{"calculate", filepath.Join(t.TempDir(), "nope.yaml")}, wantCode: exitInput, wantMsg: "nope.yaml"},
		{name: "invalid scoresheet", args: []string{"calculate", badWeight}, wantCode: exitInput, wantMsg: "weight"},
		{name: "invalid config", args: []string{"--config", badConfig, "calculate", good}, wantCode: exitInput, wantMsg: "sum to 1"},
		{name: "unknown format", args: []string{"calculate", "--format", "xml", good}, wantCode: exitInput, wantMsg: "xml"},
		{name: "unknown theme", args: []string{"--theme", "sepia", "calculate", good}, wantCode: exitInput, wantMsg: "sepia"},
		{name: "no files", args: []string{"calculate"}, wantCode: exitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, exitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSession_Script(t *testing.T) {
	script := strings.Join([]string{
		"judges 1",
		"set 1 creativity 8",
		"set 1 quality 6",
		"criterion 1 1 4",
		"voters full 10",
		"points full 70",
		"calc",
		"quit",
	}, "\n")

	out, _, err := run(t, script, "session")
	require.NoError(t, err)
	assert.Contains(t, out, "6.25 out of 10.00")
}

func TestSession_FromFileArabic(t *testing.T) {
	path := writeFile(t, "a.yaml", scenarioA)

	out, _, err := run(t, "calc\n", "--locale", "ar", "session", path)
	require.NoError(t, err)
	assert.Contains(t, out, "النتيجة النهائية")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "talentcalc "+version+"\n", out)
}
