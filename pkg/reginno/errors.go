package reginno

import (
	"fmt"

	"github.com/joshuapare/reginno/internal/regtext"
)

// RecordError reports a value record that could not be converted. It
// unwraps to the cause, which matches types.ErrMalformedHex or
// types.ErrNoKeyContext under errors.Is.
type RecordError struct {
	Line int    // first physical line of the record
	Hive string // "" when no key header preceded the record
	Key  string
	Name string // value name, "@" for the default value
	Kind string // .reg type spelling: string, dword, hex, hex(2), ...
	Err  error
}

func (e *RecordError) Error() string {
	if e.Hive == "" && e.Key == "" {
		return fmt.Sprintf("line %d: %s value %s: %v", e.Line, e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("line %d: %s value %s in [%s\\%s]: %v", e.Line, e.Kind, e.Name, e.Hive, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func newRecordError(line regtext.Line, pc *ParseContext, rec regtext.RawRecord, err error) *RecordError {
	return &RecordError{
		Line: line.Number,
		Hive: pc.Hive,
		Key:  pc.Key,
		Name: rec.DisplayName(),
		Kind: rec.Kind.String(),
		Err:  err,
	}
}
