package core

import (
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.FieldLogger]

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

func init() {
	SetLogger(nil)
}

// SetLogger replaces the logger used for diagnostics by every helper package.
// Passing nil restores the default warn-level stderr logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = defaultLogger()
	}
	logger.Store(&l)
}

// Logger returns the current diagnostics logger.
func Logger() logrus.FieldLogger {
	return *logger.Load()
}

// OpLogger returns the diagnostics logger tagged with an operation name.
func OpLogger(op string) *logrus.Entry {
	return Logger().WithField("operation", op)
}
