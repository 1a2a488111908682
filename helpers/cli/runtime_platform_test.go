//go:build !integration

package cli_helpers_test

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	cli_helpers "gitlab.com/aero-tools/flightscript/helpers/cli"
)

func TestLogRuntimePlatform(t *testing.T) {
	tests := map[string]struct {
		args                       []string
		expectedRuntimePlatformLog bool
	}{
		"no args": {
			expectedRuntimePlatformLog: true,
		},
		"build command": {
			args:                       []string{"build", "study.yaml"},
			expectedRuntimePlatformLog: true,
		},
		"schema command is quiet": {
			args: []string{"schema"},
		},
		"config command is quiet": {
			args: []string{"config"},
		},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			beforeHasBeenCalled := false

			app := cli.NewApp()
			app.Action = func(ctx *cli.Context) error {
				return nil
			}
			app.Before = func(ctx *cli.Context) error {
				beforeHasBeenCalled = true
				return nil
			}

			hook := test.NewGlobal()
			logrus.SetOutput(io.Discard)

			cli_helpers.LogRuntimePlatform(app)

			err := app.Run(append([]string{"fakeArgv0"}, tc.args...))
			require.NoError(t, err, "running app")

			assert.Equal(t, tc.expectedRuntimePlatformLog, hasLog(hook.Entries, "Runtime platform"))
			assert.True(t, beforeHasBeenCalled, "other before should be called")
		})
	}
}

func TestWarnOnBool(t *testing.T) {
	tests := map[string]struct {
		args         []string
		expectedWarn string
	}{
		"no bool value": {
			args: []string{"flightscript", "build", "--hidden"},
		},
		"bool value after flag": {
			args:         []string{"flightscript", "build", "--run", "true"},
			expectedWarn: "--run=true",
		},
		"bool value first": {
			args:         []string{"flightscript", "FALSE"},
			expectedWarn: "--hidden=false",
		},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			hook := test.NewGlobal()
			logrus.SetOutput(io.Discard)

			cli_helpers.WarnOnBool(tc.args)

			if tc.expectedWarn == "" {
				assert.Empty(t, hook.Entries)
				return
			}

			assert.True(t, hasLog(hook.Entries, tc.expectedWarn))
		})
	}
}

func hasLog(entries []logrus.Entry, message string) bool {
	for _, e := range entries {
		if strings.Contains(e.Message, message) {
			return true
		}
	}
	return false
}
