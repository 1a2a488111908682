//go:build !integration

package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/log/test"
)

func prepareFakeConfiguration() func() {
	oldConfiguration := configuration
	configuration = NewConfig(logrus.New())

	return func() {
		configuration = oldConfiguration
		configuration.ReloadConfiguration()
	}
}

func testCommandRun(args ...string) {
	app := cli.NewApp()
	app.Commands = []cli.Command{
		{
			Name:   "logtest",
			Action: func(cliCtx *cli.Context) {},
		},
	}

	ConfigureLogging(app)

	args = append([]string{"binary"}, args...)
	args = append(args, "logtest")

	_ = app.Run(args)
}

func TestHandleCliCtx(t *testing.T) {
	tests := map[string]struct {
		args                     []string
		env                      map[string]string
		expectedError            string
		expectedLevel            logrus.Level
		expectedFormatter        logrus.Formatter
		expectedLevelSetWithCli  bool
		expectedFormatSetWithCli bool
	}{
		"no configuration specified": {
			expectedLevel:     logrus.InfoLevel,
			expectedFormatter: new(RunnerTextFormatter),
		},
		"--log-level specified": {
			args:                    []string{"--log-level", "error"},
			expectedLevel:           logrus.ErrorLevel,
			expectedFormatter:       new(RunnerTextFormatter),
			expectedLevelSetWithCli: true,
		},
		"--debug specified": {
			args:                    []string{"--debug"},
			expectedLevel:           logrus.DebugLevel,
			expectedFormatter:       new(RunnerTextFormatter),
			expectedLevelSetWithCli: true,
		},
		"debug from environment": {
			env:                     map[string]string{"FLIGHTSCRIPT_DEBUG": "true"},
			expectedLevel:           logrus.DebugLevel,
			expectedFormatter:       new(RunnerTextFormatter),
			expectedLevelSetWithCli: true,
		},
		"--log-level and --debug specified": {
			args:                    []string{"--log-level", "error", "--debug"},
			expectedLevel:           logrus.DebugLevel,
			expectedFormatter:       new(RunnerTextFormatter),
			expectedLevelSetWithCli: true,
		},
		"invalid --log-level specified": {
			args:          []string{"--log-level", "test"},
			expectedError: "failed to parse log level",
		},
		"--log-format specified": {
			args:                     []string{"--log-format", "json"},
			expectedLevel:            logrus.InfoLevel,
			expectedFormatter:        new(logrus.JSONFormatter),
			expectedFormatSetWithCli: true,
		},
		"invalid --log-format specified": {
			args:          []string{"--log-format", "test"},
			expectedError: `unknown log format "test", expected one of: [json runner text]`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			defer prepareFakeConfiguration()()
			defer test.MakeFatalToPanic()()

			testFunc := func() {
				testCommandRun(tt.args...)
				if tt.expectedError == "" {
					assert.Equal(t, tt.expectedLevel, Configuration().level)
					assert.Equal(t, tt.expectedFormatter, Configuration().format)
					assert.Equal(t, tt.expectedLevelSetWithCli, Configuration().IsLevelSetWithCli())
					assert.Equal(t, tt.expectedFormatSetWithCli, Configuration().IsFormatSetWithCli())
				}
			}

			if tt.expectedError == "" {
				assert.NotPanics(t, testFunc)
				return
			}

			var message *logrus.Entry
			var ok bool

			func() {
				defer func() {
					message, ok = recover().(*logrus.Entry)
				}()

				testFunc()
			}()

			require.True(t, ok)

			panicMessage, err := message.String()
			require.NoError(t, err)

			assert.Contains(t, panicMessage, "Error while setting up logging configuration")
			assert.Contains(t, panicMessage, tt.expectedError)
		})
	}
}

func TestConfig_SetFormat(t *testing.T) {
	config := NewConfig(logrus.New())

	require.NoError(t, config.SetFormat(FormatText))
	config.ReloadConfiguration()
	assert.IsType(t, new(logrus.TextFormatter), config.logger.Formatter)

	assert.EqualError(t, config.SetFormat("xml"), `unknown log format "xml", expected one of: [json runner text]`)
}
