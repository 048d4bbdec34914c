package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordTag(t *testing.T) {
	t.Run("ExtractsHighNibble", func(t *testing.T) {
		require.Equal(t, uint8(0x8), Word(0x8000).Tag())
		require.Equal(t, uint8(0x2), Word(0x2864).Tag())
		require.Equal(t, uint8(0xF), Word(0xFFFF).Tag())
	})
}

func TestWordType(t *testing.T) {
	t.Run("RecognizedTag", func(t *testing.T) {
		typ, ok := Word(0x8000).Type()
		require.True(t, ok)
		require.Equal(t, TimeHigh, typ)
	})

	t.Run("ReservedTag", func(t *testing.T) {
		_, ok := Word(0x1000).Type()
		require.False(t, ok)

		_, ok = Word(0x9000).Type()
		require.False(t, ok)
	})
}

func TestDecodeAddrY(t *testing.T) {
	got := DecodeAddrY(Word(0x0032))
	require.Equal(t, uint16(50), got.Y)
	require.Equal(t, uint8(0), got.SystemType)
}

func TestDecodeAddrX(t *testing.T) {
	got := DecodeAddrX(Word(0x2864))
	require.Equal(t, uint16(100), got.X)
	require.Equal(t, uint8(1), got.Polarity)
}

func TestDecodeVectBaseX(t *testing.T) {
	got := DecodeVectBaseX(Word(0x3000))
	require.Equal(t, uint16(0), got.X)
	require.Equal(t, uint8(0), got.Polarity)
}

func TestDecodeVect12Mask(t *testing.T) {
	t.Run("AllBitsSet", func(t *testing.T) {
		require.Equal(t, uint16(0xFFF), DecodeVect12Mask(Word(0x4FFF)))
	})

	t.Run("PartialMask", func(t *testing.T) {
		// 0b111000111000: bits 3,4,5,9,10,11 set.
		require.Equal(t, uint16(0x0E38), DecodeVect12Mask(Word(0x4E38)))
	})
}

func TestDecodeVect8Mask(t *testing.T) {
	require.Equal(t, uint8(0xFF), DecodeVect8Mask(Word(0x50FF)))
}

func TestDecodeTimeValue(t *testing.T) {
	require.Equal(t, uint16(0xFFF), DecodeTimeValue(Word(0x8FFF)))
	require.Equal(t, uint16(100), DecodeTimeValue(Word(0x6064)))
}

func TestDecodeExtTrigger(t *testing.T) {
	got := DecodeExtTrigger(Word(0xA201))
	require.Equal(t, uint8(2), got.ID)
	require.Equal(t, uint8(1), got.Value)
}

func TestWordsFromLE(t *testing.T) {
	t.Run("EvenLength", func(t *testing.T) {
		words := WordsFromLE([]byte{0x00, 0x80, 0x64, 0x60})
		require.Equal(t, []Word{0x8000, 0x6064}, words)
	})

	t.Run("OddTrailingByteDropped", func(t *testing.T) {
		words := WordsFromLE([]byte{0x00, 0x80, 0x64})
		require.Equal(t, []Word{0x8000}, words)
	})

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, WordsFromLE(nil))
	})
}

func TestEventTypeFromTag(t *testing.T) {
	tests := []struct {
		name string
		tag  uint8
		want EventType
		ok   bool
	}{
		{"AddrY", 0x0, AddrY, true},
		{"AddrX", 0x2, AddrX, true},
		{"VectBaseX", 0x3, VectBaseX, true},
		{"Vect12", 0x4, Vect12, true},
		{"Vect8", 0x5, Vect8, true},
		{"TimeLow", 0x6, TimeLow, true},
		{"Continued4", 0x7, Continued4, true},
		{"TimeHigh", 0x8, TimeHigh, true},
		{"ExtTrigger", 0xA, ExtTrigger, true},
		{"Others", 0xE, Others, true},
		{"Continued12", 0xF, Continued12, true},
		{"Reserved1", 0x1, EventType(0x1), false},
		{"Reserved9", 0x9, EventType(0x9), false},
		{"ReservedB", 0xB, EventType(0xB), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := EventTypeFromTag(tc.tag)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.ok, ok)
		})
	}
}
