package regtext

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/reginno/pkg/types"
)

// Value is a decoded registry value. The concrete types are Text,
// Integer32, Integer64, ByteBlob and MultiText.
type Value interface {
	Type() types.RegType
}

// Text is a REG_SZ, or a REG_EXPAND_SZ when Expandable is set. The value is
// not yet .reg-unescaped.
type Text struct {
	Value      string
	Expandable bool
}

// Integer32 is a REG_DWORD.
type Integer32 uint32

// Integer64 is a REG_QWORD.
type Integer64 uint64

// ByteBlob is a REG_BINARY.
type ByteBlob []byte

// MultiText is a REG_MULTI_SZ, one element per string.
type MultiText []string

func (t Text) Type() types.RegType {
	if t.Expandable {
		return types.REG_EXPAND_SZ
	}
	return types.REG_SZ
}

func (Integer32) Type() types.RegType { return types.REG_DWORD }
func (Integer64) Type() types.RegType { return types.REG_QWORD }
func (ByteBlob) Type() types.RegType { return types.REG_BINARY }
func (MultiText) Type() types.RegType { return types.REG_MULTI_SZ }

// DecodeFunc turns a record payload into a Value. Failures wrap
// types.ErrMalformedHex.
type DecodeFunc func(payload string) (Value, error)

// Decode runs the decoder for rec.Kind.
func Decode(rec RawRecord) (Value, error) {
	for _, rule := range defaultGrammar {
		if rule.Kind == rec.Kind && rule.Decode != nil {
			return rule.Decode(rec.Payload)
		}
	}
	return nil, &types.Error{Kind: types.ErrKindUnsupported, Msg: fmt.Sprintf("record kind %s carries no value", rec.Kind)}
}

func decodeString(payload string) (Value, error) {
	return Text{Value: payload}, nil
}

func decodeDword(payload string) (Value, error) {
	digits := strings.TrimSpace(payload)
	if digits == "" || len(digits) > DWORDHexMaxDigits {
		return nil, types.Wrap(types.ErrMalformedHex, fmt.Errorf("dword %q: want 1-%d hex digits", digits, DWORDHexMaxDigits))
	}
	for i := 0; i < len(digits); i++ {
		if hexCharToNibble(digits[i]) == 0xFF {
			return nil, types.Wrap(types.ErrMalformedHex, fmt.Errorf("dword %q: invalid hex digit %q", digits, digits[i]))
		}
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, types.Wrap(types.ErrMalformedHex, err)
	}
	return Integer32(n), nil
}

func decodeBinary(payload string) (Value, error) {
	data, err := parseHexBytes(payload)
	if err != nil {
		return nil, err
	}
	return ByteBlob(data), nil
}

func decodeQWord(payload string) (Value, error) {
	data, err := parseHexBytes(payload)
	if err != nil {
		return nil, err
	}
	if len(data) > QWORDSize {
		return nil, types.Wrap(types.ErrMalformedHex, fmt.Errorf("qword has %d bytes, want at most %d", len(data), QWORDSize))
	}
	var buf [QWORDSize]byte
	copy(buf[:], data)
	return Integer64(binary.LittleEndian.Uint64(buf[:])), nil
}

func decodeExpandSZ(payload string) (Value, error) {
	s, err := decodeHexText(payload)
	if err != nil {
		return nil, err
	}
	return Text{Value: strings.TrimSuffix(s, nul), Expandable: true}, nil
}

// decodeMultiSZ splits the decoded text on null code units. The list
// terminator and the last string's own terminator are dropped first, so
// "a\0b\0\0", "a\0b\0" and "a\0b" all give [a b]; empty strings in the
// middle of the list are kept.
func decodeMultiSZ(payload string) (Value, error) {
	s, err := decodeHexText(payload)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSuffix(s, nul)
	s = strings.TrimSuffix(s, nul)
	if s == "" {
		return MultiText{}, nil
	}
	return MultiText(strings.Split(s, nul)), nil
}

func decodeHexText(payload string) (string, error) {
	data, err := parseHexBytes(payload)
	if err != nil {
		return "", err
	}
	return decodeUTF16LE(data)
}
