package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/steprange/configuration"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "steprange-logger-test.log")
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")

			assert.Regexp(t, tt.expectRx, getLogs(t, logFile), "Unexpected log output.")
		})
	}
}

func TestNewRootLogger_InvalidLevel(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "invalid"})
	require.Error(t, err)
}

func TestNewRootLoggerFromConfiguration(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "steprange-logger-test.log")

	config := configuration.New()
	require.NoError(t, config.Set(ConfigurationKeyLevel, "warn"))
	require.NoError(t, config.Set(ConfigurationKeyDisableCaller, true))
	require.NoError(t, config.Set(ConfigurationKeyOutputPaths, []string{logFile}))

	logger, err := NewRootLoggerFromConfiguration(config)
	require.NoError(t, err)

	logger.Info("info")
	logger.Warnw("warn", "range", "[10, 20]")

	logs := getLogs(t, logFile)
	assert.NotContains(t, logs, "info")
	assert.Regexp(t, `WARN\twarn\t\{"range": "\[10, 20\]"\}\n`, logs)
}

func TestNewRootLogger_Diagnostics(t *testing.T) {
	require.Equal(t, []string{"stderr"}, DefaultCfg.OutputPaths)

	logFile := filepath.Join(t.TempDir(), "steprange-logger-test.log")

	logger, err := NewRootLogger(Config{Level: "debug", Encoding: "json", DisableCaller: true, OutputPaths: []string{logFile}})
	require.NoError(t, err)

	logger.Debugw("evaluated", "op", "span", "took", 1500*time.Millisecond)

	assert.Regexp(t, `"level":"DEBUG".*"msg":"evaluated","op":"span","took":"1\.5s"`, getLogs(t, logFile))
}

func getLogs(t require.TestingT, fileName string) string {
	file, err := os.Open(fileName)
	require.NoError(t, err, "Couldn't open log file.")
	defer file.Close()

	byteContents, err := io.ReadAll(file)
	require.NoError(t, err, "Couldn't read log contents from file.")

	return string(byteContents)
}
