package test

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/godo.v2/glob"
	"voyager.com/solorpg/gamescript"
	"voyager.com/solorpg/logging"
)

var testDriverLogger = log.With().Str("logger_name", "test::testdriver").Logger()

type ScriptTestResult struct {
	Filename string
	Disabled bool
	Failures []error
}

func (s *ScriptTestResult) addError(e error) {
	s.Failures = append(s.Failures, e)
}

func (s *ScriptTestResult) Passed() bool {
	return s.Disabled || len(s.Failures) == 0
}

// TestDriver runs game scripts one after another and keeps a result per file.
type TestDriver struct {
	Results []*ScriptTestResult
}

func NewTestDriver() *TestDriver {
	return &TestDriver{}
}

// RunGameScript runs one script file. Step failures are collected in the
// result; the returned error only says whether the script passed.
func (t *TestDriver) RunGameScript(filename string) (*ScriptTestResult, error) {
	result := &ScriptTestResult{Filename: filename}
	t.Results = append(t.Results, result)
	logger := testDriverLogger.With().Str(logging.ScriptKey, filename).Logger()

	script, err := gamescript.ReadGameScript(filename)
	if err != nil {
		result.addError(err)
		return result, err
	}
	if script.Disabled {
		result.Disabled = true
		logger.Info().Msg("Script is disabled")
		return result, nil
	}

	logger.Info().Str("description", script.Description).Int("steps", len(script.Steps)).Msg("Running game script")
	run := TestGameScript{
		script:   script,
		filename: filename,
		result:   result,
	}
	if err := run.run(); err != nil {
		result.addError(err)
	}
	if !result.Passed() {
		return result, fmt.Errorf("Script %s failed with %d error(s)", filename, len(result.Failures))
	}
	return result, nil
}

// Failed returns the results of the scripts that did not pass.
func (t *TestDriver) Failed() []*ScriptTestResult {
	var failed []*ScriptTestResult
	for _, r := range t.Results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// ReportResult logs every failure and returns true when all scripts passed.
func (t *TestDriver) ReportResult() bool {
	failed := t.Failed()
	for _, r := range failed {
		for _, e := range r.Failures {
			testDriverLogger.Error().Str(logging.ScriptKey, r.Filename).Msg(e.Error())
		}
	}
	testDriverLogger.Info().
		Int("scripts", len(t.Results)).
		Int("failed", len(failed)).
		Msg("Game script run finished")
	return len(failed) == 0
}

// findScripts resolves a script file or every yaml file under a directory.
func findScripts(fileOrDir string, testName string) ([]string, error) {
	info, err := os.Stat(fileOrDir)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read game script path %s", fileOrDir)
	}
	if !info.IsDir() {
		return []string{fileOrDir}, nil
	}
	files, _, err := glob.Glob([]string{fmt.Sprintf("%s/**/*.yaml", fileOrDir)})
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to get game script file(s) from dir: %s", fileOrDir)
	}
	var scripts []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if testName != "" && !strings.Contains(file.Name(), testName) {
			continue
		}
		scripts = append(scripts, file.Path)
	}
	return scripts, nil
}

// RunGameScriptTests runs one script or every script under a directory.
// testName limits a directory run to files whose name contains it.
func RunGameScriptTests(fileOrDir string, testName string) error {
	scripts, err := findScripts(fileOrDir, testName)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return fmt.Errorf("No game scripts found in %s", fileOrDir)
	}

	driver := NewTestDriver()
	for _, script := range scripts {
		if _, err := driver.RunGameScript(script); err != nil {
			testDriverLogger.Warn().Err(err).Msg("Script failed")
		}
	}
	if !driver.ReportResult() {
		return fmt.Errorf("%d of %d scripts failed", len(driver.Failed()), len(scripts))
	}
	return nil
}
