package commands

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// hclogLogger adapts an hclog.Logger to omise.Logger.
type hclogLogger struct {
	logger hclog.Logger
}

func newLogger(out io.Writer, verbose bool) *hclogLogger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return &hclogLogger{logger: hclog.New(&hclog.LoggerOptions{
		Name:   "omise",
		Level:  level,
		Output: out,
	})}
}

func (l *hclogLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, flatten(fields)...)
}

func (l *hclogLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, flatten(fields)...)
}

func (l *hclogLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, flatten(fields)...)
}

func (l *hclogLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, flatten(fields)...)
}

// flatten turns a field map into hclog's alternating key/value arguments,
// ordered by key.
func flatten(fields map[string]interface{}) []interface{} {
	keys := sortedKeys(fields)
	args := make([]interface{}, 0, len(fields)*2)

	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}
