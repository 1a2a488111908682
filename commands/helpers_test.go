//go:build !integration

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"FS_EXE", "SCRIPT_FILE", "HIDDEN", "CATALOG_FILE", "METRICS_FILE",
	"GRACEFUL_KILL_TIMEOUT", "FORCE_KILL_TIMEOUT",
}

// isolatedConfig returns options reading a config file that doesn't exist,
// with none of the configuration variables set.
func isolatedConfig(t *testing.T) configOptions {
	t.Helper()

	for _, key := range configEnv {
		for _, name := range []string{key, "FLIGHTSCRIPT_" + key} {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	return configOptions{ConfigFile: filepath.Join(t.TempDir(), "config.toml")}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const studyPlan = `
header:
  - wing wrapping study
steps:
  - command: open_fsm
    args:
      fsm_filepath: wing.fsm
  - command: wrapper_set_input
    args:
      num_surfaces: 3
      surface_indices: [1, 2, 5]
  - command: start_solver
`
