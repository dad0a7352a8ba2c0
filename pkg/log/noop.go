package log

import (
	"context"
	"io"

	saltLog "github.com/goto/salt/log"
)

// Noop discards all log messages. Intended for tests.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (l *Noop) Debug(ctx context.Context, msg string, args ...interface{}) {}
func (l *Noop) Info(ctx context.Context, msg string, args ...interface{})  {}
func (l *Noop) Warn(ctx context.Context, msg string, args ...interface{})  {}
func (l *Noop) Error(ctx context.Context, msg string, args ...interface{}) {}
func (l *Noop) Fatal(ctx context.Context, msg string, args ...interface{}) {}

func (l *Noop) Level() string {
	return saltLog.NewNoop().Level()
}

func (l *Noop) Writer() io.Writer {
	return io.Discard
}
