// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain text records to dst.
// Level: error when quiet, trace when trace, debug when verbose, warn otherwise.
func NewLogger(dst io.Writer, quiet, verbose, trace bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case quiet:
		l.SetLevel(logrus.ErrorLevel)
	case trace:
		l.SetLevel(logrus.TraceLevel)
	case verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
