package logger

import "go.uber.org/zap/zapcore"

// keys of the "logger" section in the spancalc config files (the flags use the same names).
const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config controls the diagnostics that spancalc writes while it parses and evaluates a range operation. The results
// themselves are always printed to stdout and are not affected by it.
type Config struct {
	// Level is the minimum level of the diagnostics ("debug" also logs the parsed domain, range and operation).
	Level string `json:"level" usage:"the minimum level of the diagnostic messages"`
	// DisableCaller drops the source location from the diagnostics.
	DisableCaller bool `json:"disableCaller" usage:"omits the source location from the diagnostic messages"`
	// DisableStacktrace drops the stack traces that are otherwise attached to failed evaluations.
	DisableStacktrace bool `json:"disableStacktrace" usage:"omits the stack traces of failed evaluations"`
	// Encoding is either "console" for terminals or "json" for log collectors.
	Encoding string `json:"encoding" usage:"the format of the diagnostic messages (options: \"json\", \"console\")"`
	// OutputPaths are the files or zap sinks the diagnostics are written to. Using stdout mixes them with the results.
	OutputPaths []string `json:"outputPaths" usage:"the files or sinks (i.e. stderr) the diagnostic messages are written to"`
}

// DefaultCfg keeps the diagnostics on stderr, so the output of spancalc can be piped.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
	EncodeName:     zapcore.FullNameEncoder,
}
