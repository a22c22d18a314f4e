package reginno

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joshuapare/reginno/internal/inno"
)

// DefaultPlaceholder is the Inno constant the source directory maps to when
// no placeholder is configured.
const DefaultPlaceholder = inno.DefaultPlaceholder

// Substitution replaces a build-time directory in text values with an Inno
// constant.
type Substitution struct {
	Dir         string
	Placeholder string
}

// DefaultSubstitution returns the directory containing sourcePath, made
// absolute, paired with DefaultPlaceholder.
func DefaultSubstitution(sourcePath string) (Substitution, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return Substitution{}, fmt.Errorf("resolve source directory: %w", err)
	}
	return Substitution{Dir: filepath.Dir(abs), Placeholder: DefaultPlaceholder}, nil
}

// Options controls a conversion run.
type Options struct {
	// Substitution to apply to text values. If nil, ConvertFile uses
	// DefaultSubstitution of the input path and the stream functions apply
	// none.
	Substitution *Substitution

	// NoSubstitution disables replacement even when Substitution is nil.
	NoSubstitution bool

	// InputEncoding is the fallback when the input has no BOM.
	// Supported values: "auto" (UTF-8), "utf8", "utf16le", "windows1252"
	// Default: "auto"
	InputEncoding string

	// LineEnding terminates every output line.
	// Default: "\r\n"
	LineEnding string

	// WithBOM writes a UTF-8 byte-order mark (ConvertFile only; stream
	// callers own their writer).
	WithBOM bool

	// Logger receives diagnostics. If nil, logging is discarded.
	Logger *slog.Logger
}

func (o Options) substitution() inno.Substitution {
	if o.NoSubstitution || o.Substitution == nil {
		return inno.Substitution{}
	}
	placeholder := o.Substitution.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return inno.Substitution{Dir: o.Substitution.Dir, Placeholder: placeholder}
}
