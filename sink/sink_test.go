package sink

import (
	"bytes"
	"testing"

	"github.com/evt3decode/evt3/decoder"
	"github.com/evt3decode/evt3/endian"
	"github.com/evt3decode/evt3/errs"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []decoder.CdEvent {
	return []decoder.CdEvent{
		{X: 100, Y: 200, Polarity: 1, Timestamp: 12345},
		{X: 101, Y: 201, Polarity: 0, Timestamp: 12346},
	}
}

func TestParseFieldOrder(t *testing.T) {
	cases := []struct {
		in   string
		want FieldOrder
	}{
		{"x,y,p,t", XYPT},
		{"t,x,y,p", TXYP},
		{"x,y,t,p", XYTP},
		{"X, Y, P, T", XYPT},
		{"x,y,polarity,timestamp", XYPT},
	}
	for _, c := range cases {
		got, err := ParseFieldOrder(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestParseFieldOrderErrors(t *testing.T) {
	_, err := ParseFieldOrder("x,y,p")
	require.ErrorIs(t, err, errs.ErrInvalidFieldOrder)

	_, err = ParseFieldOrder("x,y,z,t")
	require.ErrorIs(t, err, errs.ErrUnknownFieldName)

	_, err = ParseFieldOrder("x,x,y,t")
	require.ErrorIs(t, err, errs.ErrDuplicateFieldName)
}

func TestWriteCSVDefaultOrder(t *testing.T) {
	var buf bytes.Buffer
	meta := decoder.SensorMetadata{Width: 640, Height: 480}

	n, err := WriteCSV(&buf, sampleEvents(), &meta, XYPT)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	out := buf.String()
	require.Contains(t, out, "%geometry:640,480\n")
	require.Contains(t, out, "x,y,polarity,timestamp\n")
	require.Contains(t, out, "100,200,1,12345\n")
	require.Contains(t, out, "101,201,0,12346\n")
}

func TestWriteCSVTXYPOrderNoMetadata(t *testing.T) {
	var buf bytes.Buffer

	_, err := WriteCSV(&buf, sampleEvents()[:1], nil, TXYP)
	require.NoError(t, err)

	out := buf.String()
	require.NotContains(t, out, "%geometry")
	require.Contains(t, out, "timestamp,x,y,polarity\n")
	require.Contains(t, out, "12345,100,200,1\n")
}

func TestWriteTriggerCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteTriggerCSV(&buf, []decoder.TriggerEvent{{Value: 1, ID: 2, Timestamp: 500}})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "1,2,500\n", buf.String())
}

func TestWriteBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	meta := decoder.SensorMetadata{Width: 1280, Height: 720}
	engine := endian.GetLittleEndianEngine()

	n, err := WriteBinary(&buf, sampleEvents(), meta, engine)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	data := buf.Bytes()
	require.Equal(t, "EVT3BIN\x00", string(data[:8]))
	require.Equal(t, uint32(1), engine.Uint32(data[8:12]))
	require.Equal(t, uint32(1280), engine.Uint32(data[12:16]))
	require.Equal(t, uint32(720), engine.Uint32(data[16:20]))
	require.Equal(t, uint64(2), engine.Uint64(data[20:28]))

	rec := data[28:44]
	require.Equal(t, uint16(100), engine.Uint16(rec[0:2]))
	require.Equal(t, uint16(200), engine.Uint16(rec[2:4]))
	require.Equal(t, uint8(1), rec[4])
	require.Equal(t, uint64(12345), engine.Uint64(rec[8:16]))
}
