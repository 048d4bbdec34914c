// Package evtlog provides the leveled logging used by the stream and
// cmd/evt3decode packages. The decoder and wire packages never log: decoding
// is a pure function of its input and has nothing worth logging.
//
// Levels are gated by writer: a disabled level's writer is io.Discard, so
// the formatting work for a suppressed Debug call is skipped entirely.
package evtlog

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	DebugWriter io.Writer = os.Stderr
	InfoWriter  io.Writer = os.Stderr
	WarnWriter  io.Writer = os.Stderr
	ErrWriter   io.Writer = os.Stderr
)

var (
	DebugPrefix = "[DEBUG] "
	InfoPrefix  = "[INFO]  "
	WarnPrefix  = "[WARN]  "
	ErrPrefix   = "[ERROR] "
)

var (
	debugLog = log.New(DebugWriter, DebugPrefix, log.LstdFlags)
	infoLog  = log.New(InfoWriter, InfoPrefix, log.LstdFlags)
	warnLog  = log.New(WarnWriter, WarnPrefix, log.LstdFlags)
	errLog   = log.New(ErrWriter, ErrPrefix, log.LstdFlags)
)

func init() {
	SetLevel(os.Getenv("EVT3_LOGLEVEL"))
}

// SetLevel discards the writers of every level below lvl ("debug", "info",
// "warn", "error"). An unrecognized value falls back to "info".
func SetLevel(lvl string) {
	switch lvl {
	case "debug":
		DebugWriter, InfoWriter, WarnWriter, ErrWriter = os.Stderr, os.Stderr, os.Stderr, os.Stderr
	case "warn":
		DebugWriter, InfoWriter = io.Discard, io.Discard
		WarnWriter, ErrWriter = os.Stderr, os.Stderr
	case "error":
		DebugWriter, InfoWriter, WarnWriter = io.Discard, io.Discard, io.Discard
		ErrWriter = os.Stderr
	case "info", "":
		DebugWriter = io.Discard
		InfoWriter, WarnWriter, ErrWriter = os.Stderr, os.Stderr, os.Stderr
	default:
		SetLevel("info")
		return
	}

	debugLog.SetOutput(DebugWriter)
	infoLog.SetOutput(InfoWriter)
	warnLog.SetOutput(WarnWriter)
	errLog.SetOutput(ErrWriter)
}

func Debugf(format string, v ...any) {
	if DebugWriter != io.Discard {
		debugLog.Output(2, fmt.Sprintf(format, v...))
	}
}

func Infof(format string, v ...any) {
	if InfoWriter != io.Discard {
		infoLog.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warnf(format string, v ...any) {
	if WarnWriter != io.Discard {
		warnLog.Output(2, fmt.Sprintf(format, v...))
	}
}

func Errorf(format string, v ...any) {
	if ErrWriter != io.Discard {
		errLog.Output(2, fmt.Sprintf(format, v...))
	}
}
