package octal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		value int64
		want  string
	}{
		{"zero", 6, 0, "000000"},
		{"small value", 6, 8, "000010"},
		{"typical uid", 6, 1000, "001750"},
		{"fills field exactly", 3, 0o777, "777"},
		{"eleven digit size", 11, 3, "00000000003"},
		{"overflow keeps low-order digits", 2, 0o1234, "34"},
		{"overflow by one digit", 3, 0o7777, "777"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dst := make([]byte, tt.width)
			Format(dst, tt.value)
			assert.Equal(t, tt.want, string(dst))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		want  int64
	}{
		{"plain digits", "1750", 0o1750},
		{"leading zeros", "001750", 0o1750},
		{"space terminated", "00000000003 ", 3},
		{"space and nul terminated", "001750 \x00", 0o1750},
		{"nul padded", "\x00\x00144\x00\x00", 0o144},
		{"all zeros", "000000", 0},
		{"empty", "", 0},
		{"all nul", "\x00\x00\x00\x00", 0},
		{"all spaces", "    ", 0},
		{"non-octal digits", "0089", 0},
		{"garbage", "abcdef", 0},
		{"negative is malformed", "-1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse([]byte(tt.field)))
		})
	}
}

func TestFormatParseAgree(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, 7, 8, 511, 512, 1000, 0o7777777} {
		dst := make([]byte, 11)
		Format(dst, v)
		assert.Equal(t, v, Parse(dst), "value %d", v)
	}
}
