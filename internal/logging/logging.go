// Package logging sets up the program logger.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Name of the root logger.
const Name = "structured-text-mcp"

// New returns a console logger writing to w. Debug messages are only
// written when debug is set. Colors are used when w is a terminal.
//
// Nothing is ever written to stdout: the stdio transport owns it.
func New(w io.Writer, debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if isTerminal(w) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Named(Name)
}

// NewStderr returns the program logger and redirects the standard library
// logger to it. The returned function restores the standard logger and
// flushes.
func NewStderr(debug bool) (*zap.Logger, func()) {
	log := New(os.Stderr, debug)
	restore := zap.RedirectStdLog(log)
	return log, func() {
		_ = log.Sync()
		restore()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
