package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesMatchesKnownValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Bytes([]byte(tt.data)))
		})
	}
}

func TestStreamingMatchesBytesRegardlessOfChunking(t *testing.T) {
	data := make([]byte, 10_000)
	for i := range data {
		data[i] = byte(i)
	}
	want := Bytes(data)

	for _, chunkSize := range []int{1, 7, 1000, 2_000_000} {
		s := NewStreaming()
		for offset := 0; offset < len(data); offset += chunkSize {
			end := offset + chunkSize
			if end > len(data) {
				end = len(data)
			}
			n, err := s.Write(data[offset:end])
			require.NoError(t, err)
			require.Equal(t, end-offset, n)
		}

		require.Equal(t, want, s.Sum64())
	}
}

func TestStreamingReset(t *testing.T) {
	s := NewStreaming()
	_, _ = s.Write([]byte("some bytes"))
	s.Reset()

	require.Equal(t, Bytes(nil), s.Sum64())
}

func BenchmarkStreamingWrite(b *testing.B) {
	data := make([]byte, 2_000_000)
	s := NewStreaming()
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = s.Write(data)
	}
}
