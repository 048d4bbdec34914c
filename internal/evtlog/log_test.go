package evtlog

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLevelGatesWriters(t *testing.T) {
	defer SetLevel("info")

	SetLevel("error")
	require.Equal(t, io.Discard, DebugWriter)
	require.Equal(t, io.Discard, InfoWriter)
	require.Equal(t, io.Discard, WarnWriter)
	require.NotEqual(t, io.Discard, ErrWriter)

	SetLevel("debug")
	require.NotEqual(t, io.Discard, DebugWriter)
}

func TestSetLevelUnrecognizedFallsBackToInfo(t *testing.T) {
	defer SetLevel("info")

	SetLevel("bogus")
	require.Equal(t, io.Discard, DebugWriter)
	require.NotEqual(t, io.Discard, InfoWriter)
}

func TestDebugfRespectsDiscard(t *testing.T) {
	defer SetLevel("info")
	SetLevel("info")

	require.NotPanics(t, func() { Debugf("should be suppressed: %d", 1) })
	require.Equal(t, io.Discard, DebugWriter)
}

func TestInfofWrites(t *testing.T) {
	defer SetLevel("info")
	SetLevel("debug")

	var buf bytes.Buffer
	InfoWriter = &buf
	infoLog.SetOutput(&buf)
	Infof("decoded %d events", 42)
	require.Contains(t, buf.String(), "decoded 42 events")
}
