// Package vmlog adapts github.com/sirupsen/logrus to the NVM log
// format: each record renders as the literal text "[LEVEL] <message>"
// with LEVEL one of FATAL, ERROR, WARN, INFO, DEBUG, TRACE, and no
// timestamp or field noise.
package vmlog

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Output selects where log records go: a file, stdio, or nowhere.
type Output int

const (
	OutputFile Output = iota
	OutputStdio
	OutputNone
)

// formatter implements logrus.Formatter, rendering "[LEVEL] <message>\n".
type formatter struct{}

var levelName = map[logrus.Level]string{
	logrus.PanicLevel: "FATAL",
	logrus.FatalLevel: "FATAL",
	logrus.ErrorLevel: "ERROR",
	logrus.WarnLevel:  "WARN",
	logrus.InfoLevel:  "INFO",
	logrus.DebugLevel: "DEBUG",
	logrus.TraceLevel: "TRACE",
}

func (formatter) Format(e *logrus.Entry) ([]byte, error) {
	name, ok := levelName[e.Level]
	if !ok {
		name = "INFO"
	}
	line := fmt.Sprintf("[%s] %s\n", name, e.Message)
	return []byte(line), nil
}

// New builds a *logrus.Logger writing to dest in the NVM line format,
// thresholded at level. dest is ignored when output is OutputNone.
func New(output Output, level logrus.Level, dest io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(formatter{})
	l.SetLevel(level)
	switch output {
	case OutputNone:
		l.SetOutput(io.Discard)
	default:
		l.SetOutput(dest)
	}
	return l
}

// Logger adapts *logrus.Logger to vm.Logger, the narrow interface the
// interpreter and scheduler consume.
type Logger struct {
	L *logrus.Logger

	// TraceID, when non-empty, is attached to every record as a
	// correlation field visible to any downstream formatter that
	// chooses to render fields; the default formatter above ignores
	// it to keep the literal "[LEVEL] <message>" shape, but a caller
	// wanting richer output can swap SetFormatter.
	TraceID string
}

func (lg Logger) entry() *logrus.Entry {
	if lg.TraceID == "" {
		return logrus.NewEntry(lg.L)
	}
	return lg.L.WithField("trace", lg.TraceID)
}

func (lg Logger) Warnf(format string, args ...any) {
	lg.entry().Warnf(format, args...)
}

func (lg Logger) Debugf(format string, args ...any) {
	lg.entry().Debugf(format, args...)
}
