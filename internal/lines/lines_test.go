package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_ReplacesInvalidBytes(t *testing.T) {
	assert.Equal(t, "ok", Decode([]byte("ok")))
	assert.Equal(t, "a\uFFFDb", Decode([]byte("a\xffb")))
	assert.Equal(t, "\uFFFD\uFFFD", Decode([]byte("\xff\xfe")))
	assert.Equal(t, "caf\u00e9", Decode([]byte("caf\xc3\xa9")))
	// Truncated multi-byte sequence at end of input.
	assert.Equal(t, "x\uFFFD", Decode([]byte("x\xc3")))
}

func TestDecode_KeepsBOM(t *testing.T) {
	assert.Equal(t, "\ufeffhello", Decode([]byte("\xef\xbb\xbfhello")))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank in middle", "a\n\nb", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"cr then crlf", "a\r\r\nb", []string{"a", "", "b"}},
		{"lf cr is two breaks", "a\n\rb", []string{"a", "", "b"}},
		{"form feed and vtab", "a\fb\vc", []string{"a", "b", "c"}},
		{"separators", "a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"unicode breaks", "a\u0085b\u2028c\u2029d", []string{"a", "b", "c", "d"}},
		{"tab is not a break", "a\tb", []string{"a\tb"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.in), tt.name)
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "hello", Clean("\ufeffhello"))
	assert.Equal(t, "hello", Clean("hello\ufeff"))
	assert.Equal(t, "hel\ufefflo", Clean("\ufeff\ufeffhel\ufefflo"))
	assert.Equal(t, " x ", Clean(" x "))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t \u00a0"))
	assert.False(t, IsBlank(" x "))
}

func TestExtract(t *testing.T) {
	data := []byte("\xef\xbb\xbfSTORE\n\nTOTAL\r\n   \n")

	kept, skipped := Extract(data, Options{})
	assert.Equal(t, []string{"STORE", "", "TOTAL", "   "}, kept)
	assert.Zero(t, skipped)

	kept, skipped = Extract(data, Options{SkipEmpty: true})
	assert.Equal(t, []string{"STORE", "TOTAL"}, kept)
	assert.Equal(t, 2, skipped)
}

func TestExtract_BOMOnlyLineIsBlank(t *testing.T) {
	kept, skipped := Extract([]byte("\xef\xbb\xbf\nx"), Options{SkipEmpty: true})
	assert.Equal(t, []string{"x"}, kept)
	assert.Equal(t, 1, skipped)
}

func TestExtract_Empty(t *testing.T) {
	kept, skipped := Extract(nil, Options{SkipEmpty: true})
	assert.Nil(t, kept)
	assert.Zero(t, skipped)
}
