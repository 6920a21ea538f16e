package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestReplayPrintsStatsAndPrediction(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "replay", "PPPPPPPBBBBBTTT")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Total results: 15")
	assert.Contains(t, stdout, "Player: 7 (46.7%)")
	assert.Contains(t, stdout, "Current streak: Tie x 3")
	assert.Contains(t, stdout, "P(Player) ≈ 44.4%")
	assert.Contains(t, stdout, "Highest estimate: Player")
}

func TestReplayReadsStdin(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "P B B\nT player\n", "replay")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Total results: 5")
	assert.Contains(t, stdout, "Need at least 10 results.")
	assert.Contains(t, stdout, "Currently: 5")
}

func TestReplayJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "replay", "--json", "P", "P", "B", "B", "B", "T")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	var stats, next map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &stats))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &next))

	assert.Equal(t, "stats", stats["kind"])
	assert.Equal(t, "insufficient", next["kind"])
	assert.Equal(t, map[string]any{"count": float64(6), "required": float64(10), "missing": float64(4)}, next["insufficient"])
}

func TestReplayRejectsUnknownOutcome(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "replay", "PBX")
	require.ErrorIs(t, err, domain.ErrUnrecognizedInput)
}

func TestReplayWindowOverride(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "replay", "--window", "3", "--min", "3", "PPPPPBBT")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Basis: last 3 results")
	assert.Contains(t, stdout, "Highest estimate: Banker")
}

func TestReplayRejectsConflictingFormats(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "replay", "--json", "--plain", "P")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestChatSessionFromStdin(t *testing.T) {
	input := strings.Join([]string{"/start", "P", "banker", "x", "/undo", "/undo", "/undo", "/stats", "/quit", "T"}, "\n")

	stdout, _, err := executeCLI(t, t.TempDir(), input, "chat")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Enter round results")
	assert.Contains(t, stdout, "Added ✅ P (total: 1)")
	assert.Contains(t, stdout, "Added ✅ B (total: 2)")
	assert.Contains(t, stdout, "Unrecognized input.")
	assert.Contains(t, stdout, "Undo ✅ (removed: B)")
	assert.Contains(t, stdout, "Undo ✅ (removed: P)")
	assert.Contains(t, stdout, "Nothing to undo.")
	assert.Contains(t, stdout, "No data yet")
	assert.NotContains(t, stdout, "(total: 3)")
	assert.NotContains(t, stdout, "> ")
}

func TestChatJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "➕ T\n🧹 Reset\n", "chat", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"kind":"added"`)
	assert.Contains(t, lines[1], `"kind":"reset"`)
}

func TestConfigSetThenShow(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "config", "set", "window_size", "20")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "", "config", "set", "prior.tie", "0.5")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "window_size\t20")
	assert.Contains(t, stdout, "prior.tie\t0.5")
	assert.Contains(t, stdout, filepath.Join(home, ".config", "bt", "settings.toml"))

	stdout, _, err = executeCLI(t, home, "", "replay", "PPPPPBBBBBTTTTT")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Basis: last 15 results")
}

func TestConfigShowJSON(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "config", "show", "--json")
	require.NoError(t, err)

	var view settingsView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, domain.MaxHistory, view.MaxHistory)
	assert.Equal(t, domain.DefaultWindowSize, view.WindowSize)
	assert.Equal(t, map[string]float64{"player": 1, "banker": 1, "tie": 1}, view.Prior)
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown key", args: []string{"config", "set", "colour", "3"}},
		{name: "not a number", args: []string{"config", "set", "window_size", "wide"}},
		{name: "zero window", args: []string{"config", "set", "window_size", "0"}},
		{name: "negative prior", args: []string{"config", "set", "prior.player", "-1"}},
		{name: "minimum above history", args: []string{"config", "set", "min_required", "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCLI(t, t.TempDir(), "", tt.args...)
			require.ErrorIs(t, err, domain.ErrInvalidSettings)
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "replay", "--log-level", "loud", "P")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestDebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := executeCLI(t, t.TempDir(), "", "replay", "--log-level", "debug", "P")
	require.NoError(t, err)

	assert.Contains(t, stderr, "settings loaded")
	assert.Contains(t, stderr, "outcome added")
	assert.NotContains(t, stdout, "settings loaded")
}

func TestDotEnvSetsLogLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BT_LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)

	_, stderr, err := executeCLI(t, t.TempDir(), "", "replay", "P")
	require.NoError(t, err)
	assert.Contains(t, stderr, "settings loaded")
}

func executeCLI(t *testing.T, home, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	for _, key := range []string{"BT_SETTINGS_PATH", "BT_LOG_LEVEL", "BT_HTTP_ADDR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
