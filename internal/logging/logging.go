// Package logging wires the structured logger used by the service.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is the key/value logging surface the rest of the service uses.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

type Options struct {
	JSON bool
	File string // empty means stdout
}

// New creates a Logger backed by l. Close flushes the async writer.
func New(opts Options) (Logger, error) {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      out,
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return lg, nil
}

// Nop discards everything. Handy in tests and for the CLI.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}
func (nop) Close() error                 { return nil }
