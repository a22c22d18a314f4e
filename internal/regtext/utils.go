package regtext

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/reginno/pkg/types"
)

// UnescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \"
func UnescapeRegString(s string) string {
	// Single-pass check: look for backslash which precedes all escapes
	if strings.IndexByte(s, '\\') == -1 {
		return s // Fast path: no backslashes = no escapes (zero allocation)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '"') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// parseHexBytes parses a comma-separated hex byte list (the part after
// "hex:", "hex(2):" and friends). Whitespace anywhere in the list is ignored,
// empty elements are skipped and single-digit bytes are padded with a zero.
// Any other character is a types.ErrMalformedHex failure.
func parseHexBytes(list string) ([]byte, error) {
	list = removeWhitespace(list)
	if list == "" {
		return []byte{}, nil
	}

	parts := strings.Split(list, HexByteSeparator)
	buf := make([]byte, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if len(p) > 2 {
			return nil, types.Wrap(types.ErrMalformedHex, fmt.Errorf("byte %d: %q is longer than two digits", i, p))
		}
		var v byte
		for j := 0; j < len(p); j++ {
			n := hexCharToNibble(p[j])
			if n == 0xFF {
				return nil, types.Wrap(types.ErrMalformedHex, fmt.Errorf("byte %d: invalid hex digit %q", i, p[j]))
			}
			v = v<<4 | n
		}
		buf = append(buf, v)
	}
	return buf, nil
}

// removeWhitespace drops spaces, tabs and stray line breaks from a hex list.
func removeWhitespace(s string) string {
	if strings.IndexAny(s, " \t\r\n") == -1 {
		return s
	}
	var result strings.Builder
	result.Grow(len(s))
	for _, ch := range s {
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			result.WriteRune(ch)
		}
	}
	return result.String()
}

// hexCharToNibble converts a hex character to its 4-bit value
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

// decodeUTF16LE decodes raw UTF-16LE code units to UTF-8. A BOM is not
// interpreted; null code units come through as "\x00".
func decodeUTF16LE(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%UTF16CodeUnitSize != 0 {
		return "", types.Wrap(types.ErrMalformedHex, fmt.Errorf("utf16 payload has odd length %d", len(data)))
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", types.Wrap(types.ErrMalformedHex, err)
	}
	return string(out), nil
}
