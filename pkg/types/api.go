package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // unreadable source document (bad encoding, oversized line)
	ErrKindDecode                     // malformed payload in a value record (bad hex)
	ErrKindContext                    // record that needs context the document never provided
	ErrKindUnsupported                // valid feature we don't support (yet)
	ErrKindIO                         // input/output stream failure
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindDecode:
		return "decode"
	case ErrKindContext:
		return "context"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind and message, so wrapped sentinels
// compare equal via errors.Is even after a cause is attached.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformedHex indicates a non-hex character where a hex digit or byte was expected.
	ErrMalformedHex = &Error{Kind: ErrKindDecode, Msg: "malformed hex payload"}
	// ErrNoKeyContext indicates a value record appeared before any key record.
	ErrNoKeyContext = &Error{Kind: ErrKindContext, Msg: "value record before any key record"}
	// ErrUnsupportedEncoding indicates an input encoding name we cannot decode.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindUnsupported, Msg: "unsupported encoding"}
)

// Wrap attaches cause to a copy of the sentinel e.
func Wrap(e *Error, cause error) *Error {
	return &Error{Kind: e.Kind, Msg: e.Msg, Err: cause}
}

// -----------------------------------------------------------------------------
// Value Types
// -----------------------------------------------------------------------------

// RegType enumerates the Windows registry value types a .reg file can carry
// and the pipeline can translate. (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// InnoTag returns the Inno Setup ValueType keyword for t, or "" when Inno
// has no equivalent.
func (t RegType) InnoTag() string {
	switch t {
	case REG_SZ:
		return "string"
	case REG_EXPAND_SZ:
		return "expandsz"
	case REG_BINARY:
		return "binary"
	case REG_DWORD:
		return "dword"
	case REG_MULTI_SZ:
		return "multisz"
	case REG_QWORD:
		return "qword"
	default:
		return ""
	}
}

// IsText reports whether values of type t carry human-readable text.
func (t RegType) IsText() bool {
	return t == REG_SZ || t == REG_EXPAND_SZ || t == REG_MULTI_SZ
}
