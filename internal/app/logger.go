package app

import (
	"fmt"
	"io"
	"time"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct {
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w, now: time.Now} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	timestamp := now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(l.w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// MultiLogger fans every entry out to all of its loggers.
type MultiLogger []Logger

func (m MultiLogger) Infof(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Infof(component, format, args...)
	}
}

func (m MultiLogger) Errorf(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Errorf(component, format, args...)
	}
}
