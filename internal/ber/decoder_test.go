package ber

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		input       string
		class       Class
		constructed bool
		number      uint64
	}{
		{"80", ClassContextSpecific, false, 0},
		{"83", ClassContextSpecific, false, 3},
		{"01", ClassUniversal, false, TagBoolean},
		{"30", ClassUniversal, true, TagSequence},
		{"9E", ClassContextSpecific, false, 30},
		{"1F1F", ClassUniversal, false, 31},
		{"7F25", ClassApplication, true, 37},
		{"BF25", ClassContextSpecific, true, 37},
		{"9F25", ClassContextSpecific, false, 37},
		{"1F25", ClassUniversal, false, 37},
		{"BF8104", ClassContextSpecific, true, 132},
		{"BF811F", ClassContextSpecific, true, 159},
		{"7f8163", ClassApplication, true, 227},
		{"9f8333", ClassContextSpecific, false, 435},
		{"9f818333", ClassContextSpecific, false, 16819},
		{"DF81839322", ClassPrivate, false, 2148770},
		{"FF81FFFFFFFFFFFFFFFF7F", ClassPrivate, true, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := ParseTag(hexutil.MustDecode(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.class, tag.Class())
			assert.Equal(t, tt.constructed, tag.Constructed())
			assert.Equal(t, tt.number, tag.Number())
		})
	}
}

func TestParseTag_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
		offset  int
	}{
		{"nil input", nil, ErrNoData, 0},
		{"empty input", []byte{}, ErrNoData, 0},
		{"short form with trailing byte", hexutil.MustDecode("AF25"), ErrTrailingBytes, 1},
		{"long form marker only", hexutil.MustDecode("9F"), ErrTruncatedTag, 1},
		{"continuation never terminates", hexutil.MustDecode("BF8188"), ErrUnterminatedTag, 3},
		{"terminated early with trailing byte", hexutil.MustDecode("1F011D"), ErrTrailingBytes, 2},
		{"long form with trailing bytes", hexutil.MustDecode("BF811F00"), ErrTrailingBytes, 3},
		{"leading zero group", hexutil.MustDecode("9F808003"), ErrNonMinimalTag, 1},
		{"leading zero group large", hexutil.MustDecode("9F80811F"), ErrNonMinimalTag, 1},
		{"long form for short number", hexutil.MustDecode("9F03"), ErrNonMinimalTag, 1},
		{"long form for 30", hexutil.MustDecode("9F1E"), ErrNonMinimalTag, 1},
		{"exceeds uint64", hexutil.MustDecode("9F82808080808080808000"), ErrTagOverflow, 10},
		{"eleven continuation octets", hexutil.MustDecode("9F8181818181818181818101"), ErrTagOverflow, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTag(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.ErrorIs(t, err, tt.wantErr)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.offset, pe.Offset)
			assert.Equal(t, tt.input, pe.Data)
		})
	}
}

func TestParseTag_ErrorMessage(t *testing.T) {
	_, err := ParseTag(hexutil.MustDecode("bf8188"))
	require.Error(t, err)
	assert.Equal(t, "ber: cannot parse tag BF8188: unterminated long-form tag at offset 3", err.Error())

	_, err = ParseTag(nil)
	require.Error(t, err)
	assert.Equal(t, "ber: cannot parse tag: no tag data", err.Error())
}

func TestParseOptions_AllowNonMinimal(t *testing.T) {
	opts := ParseOptions{AllowNonMinimal: true}

	tests := []struct {
		input  string
		number uint64
	}{
		{"9f808003", 3},
		{"9F03", 3},
		{"9F80811F", 159},
		{"9F25", 37},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := opts.ParseTag(hexutil.MustDecode(tt.input))
			require.NoError(t, err)
			assert.Equal(t, ClassContextSpecific, tag.Class())
			assert.False(t, tag.Constructed())
			assert.Equal(t, tt.number, tag.Number())
		})
	}

	// Structural errors are still reported.
	_, err := opts.ParseTag(hexutil.MustDecode("1F011D"))
	assert.ErrorIs(t, err, ErrTrailingBytes)
	_, err = opts.ParseTag(hexutil.MustDecode("BF8188"))
	assert.ErrorIs(t, err, ErrUnterminatedTag)
}

func TestParseOptions_MaxOctets(t *testing.T) {
	opts := ParseOptions{MaxOctets: 3}

	tag, err := opts.ParseTag(hexutil.MustDecode("BF811F"))
	require.NoError(t, err)
	assert.Equal(t, uint64(159), tag.Number())

	_, err = opts.ParseTag(hexutil.MustDecode("9F818333"))
	assert.ErrorIs(t, err, ErrTagOverflow)
	assert.ErrorIs(t, err, ErrParse)

	tag, err = ParseOptions{MaxOctets: 1}.ParseTag(hexutil.MustDecode("83"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), tag.Number())
}

func TestDecodeTag(t *testing.T) {
	tests := []struct {
		input    string
		number   uint64
		consumed int
	}{
		{"30 03 02 01 05", TagSequence, 1},
		{"BF811F 00", 159, 3},
		{"DF81839322", 2148770, 5},
		{"7F25 80 00 00", 37, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, n, err := DecodeTag(hexutil.MustDecode(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.number, tag.Number())
			assert.Equal(t, tt.consumed, n)
		})
	}

	_, _, err := DecodeTag(hexutil.MustDecode("9F03 00"))
	assert.ErrorIs(t, err, ErrNonMinimalTag)
	_, _, err = DecodeTag(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRoundTrip_Tag(t *testing.T) {
	classes := []Class{ClassUniversal, ClassApplication, ClassContextSpecific, ClassPrivate}
	numbers := []uint64{0, 1, 30, 31, 127, 128, 159, 16383, 16384, 2148770, 1 << 35, math.MaxUint64}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		numbers = append(numbers, rng.Uint64()>>uint(rng.Intn(64)))
	}

	for _, class := range classes {
		for _, constructed := range []bool{false, true} {
			for _, number := range numbers {
				tag := MustTag(class, constructed, number)
				data := EncodeTag(tag)

				parsed, err := ParseTag(data)
				require.NoError(t, err, "tag %v", tag)
				assert.Equal(t, tag, parsed)
				assert.Equal(t, data, EncodeTag(parsed), "re-encode %v", tag)
			}
		}
	}
}

func TestRoundTrip_AllOctets(t *testing.T) {
	// Every single octet except a bare long-form marker is a complete tag.
	for b := 0; b < 256; b++ {
		data := []byte{byte(b)}
		tag, err := ParseTag(data)
		if b&numberMask == longFormMarker {
			assert.ErrorIs(t, err, ErrTruncatedTag)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, data, EncodeTag(tag))
	}
}

func TestParseTag_Concurrent(t *testing.T) {
	data := hexutil.MustDecode("DF81839322")
	want := MustTag(ClassPrivate, false, 2148770)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tag, err := ParseTag(data)
				if err != nil || tag != want {
					t.Errorf("unexpected result %v, %v", tag, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
