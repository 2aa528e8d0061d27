package ber

import (
	"testing"
)

// BenchmarkEncodeTagShort benchmarks single-octet tag encoding.
func BenchmarkEncodeTagShort(b *testing.B) {
	tag := MustTag(ClassContextSpecific, true, 3)
	buf := make([]byte, 0, 16)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf = AppendTag(buf[:0], tag)
	}
}

// BenchmarkEncodeTagLong benchmarks multi-octet tag encoding.
func BenchmarkEncodeTagLong(b *testing.B) {
	tag := MustTag(ClassPrivate, false, 2148770)
	buf := make([]byte, 0, 16)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf = AppendTag(buf[:0], tag)
	}
}

// BenchmarkParseTagShort benchmarks single-octet tag parsing.
func BenchmarkParseTagShort(b *testing.B) {
	data := []byte{0x83}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = ParseTag(data)
	}
}

// BenchmarkParseTagLong benchmarks multi-octet tag parsing.
func BenchmarkParseTagLong(b *testing.B) {
	data := []byte{0xDF, 0x81, 0x83, 0x93, 0x22}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = ParseTag(data)
	}
}

// BenchmarkParseTagError benchmarks the failure path.
func BenchmarkParseTagError(b *testing.B) {
	data := []byte{0xBF, 0x81, 0x88}
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = ParseTag(data)
	}
}
