package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRawFile(t *testing.T) string {
	t.Helper()

	// TIME_HIGH, ADDR_Y y=5, ADDR_X x=10 pol=0, one CD event total.
	data := []byte{
		0x00, 0x81,
		0x05, 0x00,
		0x0A, 0x20,
	}

	path := filepath.Join(t.TempDir(), "capture.raw")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestRunWritesCSV(t *testing.T) {
	input := sampleRawFile(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, run(input, output, "", "x,y,p,t", true))

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(contents), "10,5,0,")
}

func TestRunWritesBinary(t *testing.T) {
	input := sampleRawFile(t)
	output := filepath.Join(t.TempDir(), "out.bin")

	require.NoError(t, run(input, output, "", "x,y,p,t", true))

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "EVT3BIN\x00", string(contents[:8]))
}

func TestRunRejectsUnknownOutputExtension(t *testing.T) {
	input := sampleRawFile(t)
	output := filepath.Join(t.TempDir(), "out.txt")

	err := run(input, output, "", "x,y,p,t", true)
	require.Error(t, err)
}

func TestRunRejectsInvalidFieldFormat(t *testing.T) {
	input := sampleRawFile(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	err := run(input, output, "", "x,y,z,t", true)
	require.Error(t, err)
}
