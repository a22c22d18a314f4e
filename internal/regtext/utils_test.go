package regtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeRegString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`C:\\Program Files\\App`, `C:\Program Files\App`},
		{`\\\\server\\share`, `\\server\share`},
		{`say \"hi\"`, `say "hi"`},
		{`Path\\\"Name`, `Path\"Name`},
		{`lone\x`, `lone\x`},
		{`trailing\`, `trailing\`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, UnescapeRegString(tt.in))
		})
	}
}

func TestParseHexBytes(t *testing.T) {
	got, err := parseHexBytes("de,AD, be ,ef,,")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)
}

func TestHexCharToNibble(t *testing.T) {
	assert.Equal(t, byte(0), hexCharToNibble('0'))
	assert.Equal(t, byte(10), hexCharToNibble('a'))
	assert.Equal(t, byte(15), hexCharToNibble('F'))
	assert.Equal(t, byte(0xFF), hexCharToNibble('g'))
}

func TestDecodeUTF16LE_KeepsNulls(t *testing.T) {
	s, err := decodeUTF16LE([]byte{'a', 0, 0, 0, 'b', 0})
	require.NoError(t, err)
	assert.Equal(t, "a\x00b", s)
}
