package test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const scriptDir = "game-scripts"

func TestFlushWager(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/flush-wager.yaml", ""))
}

func TestFailingHand(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/failing-hand.yaml", ""))
}

func TestSelection(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/selection.yaml", ""))
}

func TestDiscards(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/discards.yaml", ""))
}

func TestBonusSlots(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/bonus-slots.yaml", ""))
}

func TestImprovements(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/improvements.yaml", ""))
}

func TestStreak(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/streak.yaml", ""))
}

func TestFullGame(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/full-game.yaml", ""))
}

func TestZeroHealth(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts/zero-health.yaml", ""))
}

func TestAllScripts(t *testing.T) {
	require.NoError(t, RunGameScriptTests(scriptDir, ""))
}

func TestFilteredScripts(t *testing.T) {
	require.NoError(t, RunGameScriptTests(scriptDir, "wager"))
}

func TestMissingScript(t *testing.T) {
	require.Error(t, RunGameScriptTests("game-scripts/missing.yaml", ""))
}

func TestDisabledScriptIsSkipped(t *testing.T) {
	driver := NewTestDriver()
	result, err := driver.RunGameScript("game-scripts/disabled.yaml")
	require.NoError(t, err)
	require.True(t, result.Disabled)
	require.Empty(t, driver.Failed())
	require.True(t, driver.ReportResult())
}

func TestFailedExpectationsAreCollected(t *testing.T) {
	dir := t.TempDir()
	script := `
seed: 4
steps:
  - action: startGame
    verify:
      status: idle
      round: 3
  - action: redraw
    verify:
      rejected: true
`
	filename := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(script), 0644))

	driver := NewTestDriver()
	result, err := driver.RunGameScript(filename)
	require.Error(t, err)
	require.Len(t, result.Failures, 2)
	require.Len(t, driver.Failed(), 1)
	require.False(t, driver.ReportResult())
	require.Error(t, RunGameScriptTests(dir, ""))
}

func TestEmptyScriptDir(t *testing.T) {
	require.Error(t, RunGameScriptTests(t.TempDir(), ""))
}
