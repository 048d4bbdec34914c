package compress

import "testing"

func benchmarkCompress(b *testing.B, codec Codec) {
	data := bytesOfLength(2_000_000)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := codec.Compress(data); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecompress(b *testing.B, codec Codec) {
	data := bytesOfLength(2_000_000)
	compressed, err := codec.Compress(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := codec.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkZstdCompress(b *testing.B)   { benchmarkCompress(b, NewZstdCompressor()) }
func BenchmarkZstdDecompress(b *testing.B) { benchmarkDecompress(b, NewZstdCompressor()) }
func BenchmarkS2Compress(b *testing.B)     { benchmarkCompress(b, NewS2Compressor()) }
func BenchmarkS2Decompress(b *testing.B)   { benchmarkDecompress(b, NewS2Compressor()) }
func BenchmarkLZ4Compress(b *testing.B)    { benchmarkCompress(b, NewLZ4Compressor()) }
func BenchmarkLZ4Decompress(b *testing.B)  { benchmarkDecompress(b, NewLZ4Compressor()) }
