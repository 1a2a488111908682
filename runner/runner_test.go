//go:build !integration

package runner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/aero-tools/flightscript/helpers/process"
	"gitlab.com/aero-tools/flightscript/script"
)

func TestBuildArgs(t *testing.T) {
	tests := map[string]struct {
		hidden          bool
		expectedArgs    []string
		expectedCommand []string
	}{
		"visible": {
			expectedArgs:    []string{"-script", "run.txt"},
			expectedCommand: []string{"/opt/fs/FlightStream", "-script", "run.txt"},
		},
		"hidden": {
			hidden:          true,
			expectedArgs:    []string{"-hidden", "-script", "run.txt"},
			expectedCommand: []string{"/opt/fs/FlightStream", "-hidden", "-script", "run.txt"},
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tt.expectedArgs, BuildArgs("run.txt", tt.hidden))
			assert.Equal(t, tt.expectedCommand, Command("/opt/fs/FlightStream", "run.txt", tt.hidden))
		})
	}
}

func TestResolveExecutable(t *testing.T) {
	tests := map[string]struct {
		executable    string
		env           string
		expected      string
		expectedError error
	}{
		"explicit executable": {
			executable: "/opt/fs/FlightStream",
			env:        "/usr/local/bin/FlightStream",
			expected:   "/opt/fs/FlightStream",
		},
		"environment fallback": {
			env:      "/usr/local/bin/FlightStream",
			expected: "/usr/local/bin/FlightStream",
		},
		"not set": {
			expectedError: ErrExecutableNotSet,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			t.Setenv(ExecutableEnv, tt.env)

			executable, err := ResolveExecutable(tt.executable)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Equal(t, tt.expected, executable)
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t,
		`/opt/fs/FlightStream -hidden -script 'my script.txt'`,
		quote([]string{"/opt/fs/FlightStream", "-hidden", "-script", "my script.txt"}),
	)
}

func mockProcess(t *testing.T) (*process.MockCommander, *process.MockKillWaiter, *process.CommandOptions) {
	t.Helper()

	commanderMock := process.NewMockCommander(t)
	killWaiterMock := process.NewMockKillWaiter(t)
	options := new(process.CommandOptions)

	oldNewCommander := newCommander
	oldNewKillWaiter := newKillWaiter
	oldGetExitCode := getExitCode

	t.Cleanup(func() {
		newCommander = oldNewCommander
		newKillWaiter = oldNewKillWaiter
		getExitCode = oldGetExitCode
	})

	newCommander = func(executable string, args []string, opts process.CommandOptions) process.Commander {
		assert.Equal(t, "/opt/fs/FlightStream", executable)
		assert.Equal(t, []string{"-hidden", "-script", "run.txt"}, args)
		*options = opts

		return commanderMock
	}

	newKillWaiter = func(process.Logger, time.Duration, time.Duration) process.KillWaiter {
		return killWaiterMock
	}

	return commanderMock, killWaiterMock, options
}

func TestRunner_Run(t *testing.T) {
	startErr := errors.New("exec: permission denied")

	tests := map[string]struct {
		startErr         error
		waitErr          error
		exitCode         int
		expectedError    error
		expectedExitCode int
	}{
		"exits successfully": {},
		"exits with a failure code": {
			waitErr:          &exec.ExitError{ProcessState: &os.ProcessState{}},
			exitCode:         3,
			expectedExitCode: 3,
		},
		"fails to start": {
			startErr:      startErr,
			expectedError: startErr,
		},
		"wait fails": {
			waitErr:       os.ErrClosed,
			expectedError: os.ErrClosed,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			commanderMock, _, options := mockProcess(t)
			getExitCode = func(*exec.ExitError) int { return tt.exitCode }

			commanderMock.On("Start").Run(func(mock.Arguments) {
				_, _ = options.Stdout.Write([]byte("Solver converged\n"))
				_, _ = options.Stderr.Write([]byte("license warning\n"))
			}).Return(tt.startErr).Once()

			if tt.startErr == nil {
				commanderMock.On("Wait").Return(tt.waitErr).Once()
			}

			metrics := NewMetrics()
			r := New(nil, metrics)

			result, err := r.Run(context.Background(), Options{
				Executable: "/opt/fs/FlightStream",
				ScriptPath: "run.txt",
				Hidden:     true,
				Env:        []string{"FS_LICENSE=server"},
			})

			assert.Contains(t, options.Env, "FS_LICENSE=server")
			assert.True(t, options.HideWindow)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				if tt.startErr != nil {
					assert.Nil(t, result)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedExitCode, result.ExitCode)
			assert.Equal(t, tt.expectedExitCode == 0, result.Success())
			assert.Equal(t, "Solver converged\n", result.Stdout)
			assert.Equal(t, "license warning\n", result.Stderr)

			assert.Equal(t, float64(1), runsCount(t, metrics))
		})
	}
}

func TestRunner_Run_ContextCancelled(t *testing.T) {
	commanderMock, killWaiterMock, _ := mockProcess(t)

	release := make(chan struct{})
	defer close(release)

	commanderMock.On("Start").Return(nil).Once()
	commanderMock.On("Wait").Return(func() error {
		<-release
		return nil
	}).Maybe()
	killWaiterMock.On("KillAndWait", commanderMock, mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, hook := test.NewNullLogger()

	result, err := New(logger, nil).Run(ctx, Options{
		Executable: "/opt/fs/FlightStream",
		ScriptPath: "run.txt",
		Hidden:     true,
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, InterruptedExitCode, result.ExitCode)
	assert.False(t, result.Success())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Run interrupted", entry.Message)
}

func TestRunner_Run_KillFailed(t *testing.T) {
	commanderMock, killWaiterMock, options := mockProcess(t)

	release := make(chan struct{})
	defer close(release)

	commanderMock.On("Start").Run(func(mock.Arguments) {
		_, _ = options.Stdout.Write([]byte("Solver iteration 1\n"))
	}).Return(nil).Once()
	commanderMock.On("Wait").Return(func() error {
		<-release
		return nil
	}).Maybe()
	killWaiterMock.On("KillAndWait", commanderMock, mock.Anything).
		Return(&process.KillProcessError{}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, hook := test.NewNullLogger()

	result, err := New(logger, nil).Run(ctx, Options{
		Executable: "/opt/fs/FlightStream",
		ScriptPath: "run.txt",
		Hidden:     true,
	})

	assert.ErrorIs(t, err, &process.KillProcessError{})
	require.NotNil(t, result)
	assert.Equal(t, InterruptedExitCode, result.ExitCode)
	assert.False(t, result.Success())
	assert.Empty(t, result.Stdout)
	assert.Empty(t, result.Stderr)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Run interrupted, output discarded", entry.Message)
}

func TestRunner_Run_PreconditionsChecked(t *testing.T) {
	tests := map[string]struct {
		options       Options
		expectedError error
	}{
		"executable not set": {
			options:       Options{ScriptPath: "run.txt"},
			expectedError: ErrExecutableNotSet,
		},
		"script missing": {
			options: Options{
				Executable:  "/opt/fs/FlightStream",
				ScriptPath:  filepath.Join(t.TempDir(), "missing.txt"),
				CheckScript: true,
			},
			expectedError: fs.ErrNotExist,
		},
	}

	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			t.Setenv(ExecutableEnv, "")

			oldNewCommander := newCommander
			defer func() { newCommander = oldNewCommander }()

			newCommander = func(string, []string, process.CommandOptions) process.Commander {
				t.Fatal("nothing should be launched")
				return nil
			}

			result, err := New(nil, nil).Run(context.Background(), tt.options)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, result)
		})
	}
}

func TestRunner_Run_DefaultScript(t *testing.T) {
	commanderMock := process.NewMockCommander(t)
	commanderMock.On("Start").Return(nil).Once()
	commanderMock.On("Wait").Return(nil).Once()

	oldNewCommander := newCommander
	defer func() { newCommander = oldNewCommander }()

	newCommander = func(_ string, args []string, _ process.CommandOptions) process.Commander {
		assert.Equal(t, []string{ScriptFlag, script.DefaultFile}, args)
		return commanderMock
	}

	_, err := New(nil, nil).Run(context.Background(), Options{Executable: "FlightStream"})
	assert.NoError(t, err)
}

func runsCount(t *testing.T, m *Metrics) float64 {
	t.Helper()

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(m))

	families, err := registry.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != "flightscript_runs_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}

	return total
}
