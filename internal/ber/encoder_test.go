package ber

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

func TestEncodeTag(t *testing.T) {
	tests := []struct {
		name        string
		class       Class
		constructed bool
		number      uint64
		expected    string
	}{
		// Short form
		{"context primitive 0", ClassContextSpecific, false, 0, "80"},
		{"context primitive 3", ClassContextSpecific, false, 3, "83"},
		{"universal primitive boolean", ClassUniversal, false, TagBoolean, "01"},
		{"universal constructed sequence", ClassUniversal, true, TagSequence, "30"},
		{"universal constructed set", ClassUniversal, true, TagSet, "31"},
		{"application constructed 1", ClassApplication, true, 1, "61"},
		{"private primitive 5", ClassPrivate, false, 5, "C5"},
		{"max short form", ClassContextSpecific, false, 30, "9E"},

		// Long form
		{"min long form", ClassUniversal, false, 31, "1F1F"},
		{"application constructed 37", ClassApplication, true, 37, "7F25"},
		{"context constructed 37", ClassContextSpecific, true, 37, "BF25"},
		{"universal primitive 37", ClassUniversal, false, 37, "1F25"},
		{"max one continuation octet", ClassUniversal, false, 127, "1F7F"},
		{"min two continuation octets", ClassUniversal, false, 128, "1F8100"},
		{"context constructed 159", ClassContextSpecific, true, 159, "BF811F"},
		{"context primitive 159", ClassContextSpecific, false, 159, "9F811F"},
		{"application constructed 227", ClassApplication, true, 227, "7F8163"},
		{"context primitive 256", ClassContextSpecific, false, 256, "9F8200"},
		{"context primitive 435", ClassContextSpecific, false, 435, "9F8333"},
		{"context primitive 16819", ClassContextSpecific, false, 16819, "9F818333"},
		{"private primitive 2148770", ClassPrivate, false, 2148770, "DF81839322"},
		{"max uint64", ClassPrivate, true, math.MaxUint64, "FF81FFFFFFFFFFFFFFFF7F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := MustTag(tt.class, tt.constructed, tt.number)
			got := EncodeTag(tag)
			assert.Equal(t, hexutil.MustDecode(tt.expected), got)
			assert.Equal(t, len(got), TagSize(tag))
		})
	}
}

func TestEncodeTag_ShortLongBoundary(t *testing.T) {
	short := EncodeTag(MustTag(ClassApplication, false, 30))
	assert.Len(t, short, 1)
	assert.Equal(t, byte(30), short[0]&numberMask)

	long := EncodeTag(MustTag(ClassApplication, false, 31))
	assert.Len(t, long, 2)
	assert.Equal(t, byte(longFormMarker), long[0]&numberMask)
}

func TestEncodeTag_Minimal(t *testing.T) {
	for shift := uint(0); shift < 64; shift++ {
		n := uint64(1) << shift
		for _, v := range []uint64{n - 1, n, n + 1} {
			if v <= maxShortNumber {
				continue
			}
			data := EncodeTag(MustTag(ClassContextSpecific, false, v))
			assert.NotEqual(t, byte(continuationBit), data[1], "leading zero group for %d", v)
			assert.Equal(t, 1+base128Len(v), len(data), "length for %d", v)
			assert.Zero(t, data[len(data)-1]&continuationBit, "last octet for %d", v)
		}
	}
}

func TestAppendTag(t *testing.T) {
	buf := []byte{0xAA}
	buf = AppendTag(buf, MustTag(ClassContextSpecific, true, 159))
	buf = AppendTag(buf, MustTag(ClassUniversal, false, TagInteger))
	assert.Equal(t, hexutil.MustDecode("AA BF811F 02"), buf)
}

func TestBase128Len(t *testing.T) {
	assert.Equal(t, 1, base128Len(0))
	assert.Equal(t, 1, base128Len(127))
	assert.Equal(t, 2, base128Len(128))
	assert.Equal(t, 2, base128Len(16383))
	assert.Equal(t, 3, base128Len(16384))
	assert.Equal(t, 10, base128Len(math.MaxUint64))
}
