// Package logging is a small tagged logger used by the hosts and the render loop.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	tag   string
	debug bool
	out   *log.Logger
}

// New returns a logger that writes "[TAG] message" lines to w.
func New(w io.Writer, tag string, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		tag:   tag,
		debug: debug,
		out:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Discard drops everything.
func Discard() *Logger { return New(io.Discard, "", false) }

// With returns a logger sharing the output and level but using a different tag.
func (l *Logger) With(tag string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{tag: tag, debug: l.debug, out: l.out}
}

func (l *Logger) DebugEnabled() bool { return l != nil && l.debug }

func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.printf("DEBUG", format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.printf("INFO", format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.printf("ERROR", format, args...)
}

func (l *Logger) printf(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.tag != "" {
		msg = "[" + l.tag + "] " + msg
	}
	l.out.Printf("%-5s %s", level, msg)
}
