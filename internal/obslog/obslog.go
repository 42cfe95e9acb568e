// Package obslog owns the module's single package-level logger. Components
// that want to log (action dispatch exceptions, engine I/O failures, config
// reload errors) pull it via Logger rather than constructing their own.
package obslog

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.Mutex
	logger = newDefault()
)

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLevel adjusts the shared logger's minimum level.
func SetLevel(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// EnableFileRotation directs output to both stderr and a rotating log file,
// mirroring the teacher's bootstrap of lumberjack alongside logrus.
func EnableFileRotation(path string, maxSizeMB, maxBackups, maxAgeDays int) {
	mu.Lock()
	defer mu.Unlock()
	roller := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	logger.SetOutput(io.MultiWriter(logger.Out, roller))
}
