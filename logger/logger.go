// Package logger creates the zap based root logger of the command line tools from a Config or a
// configuration.Configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/configuration"
)

// Logger is the logger that is handed to the components.
type Logger = zap.SugaredLogger

// NewRootLogger creates a new root logger from the provided configuration. Empty fields of the Config are replaced by
// the values of DefaultCfg.
func NewRootLogger(cfg Config) (*Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultCfg.Level
	}
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultCfg.Encoding
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = DefaultCfg.OutputPaths
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build root logger")
	}

	return root.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the "logger" keys of the provided configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	// get config values one by one, so that missing keys keep their defaults
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}

// NewNopLogger returns a logger that discards all log messages.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}
