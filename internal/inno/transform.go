package inno

import (
	"strings"

	"github.com/joshuapare/reginno/internal/regtext"
)

// Substitution replaces a build-time directory with an installer constant.
// An empty Dir disables replacement.
type Substitution struct {
	Dir         string
	Placeholder string
}

// Transformer applies the text transform to decoded values.
type Transformer struct {
	dir         string // Dir as it looks after brace escaping
	placeholder string
}

// NewTransformer returns a Transformer for sub.
func NewTransformer(sub Substitution) *Transformer {
	return &Transformer{dir: EscapeBraces(sub.Dir), placeholder: sub.Placeholder}
}

// EscapeBraces doubles every opening brace so Inno does not read it as a
// constant.
func EscapeBraces(s string) string {
	if !strings.Contains(s, openBrace) {
		return s
	}
	return strings.ReplaceAll(s, openBrace, escapedBrace)
}

// Text runs the transform over one string. unescape selects the .reg
// un-escape step; Apply always sets it.
func (t *Transformer) Text(s string, unescape bool) string {
	if unescape {
		s = regtext.UnescapeRegString(s)
	}
	s = EscapeBraces(s)
	return t.substitute(s)
}

func (t *Transformer) substitute(s string) string {
	if t.dir == "" {
		return s
	}
	return strings.ReplaceAll(s, t.dir, t.placeholder)
}

// Name prepares a value name: .reg un-escaping and brace escaping, no
// substitution.
func (t *Transformer) Name(raw string) string {
	return EscapeBraces(regtext.UnescapeRegString(raw))
}

// Apply returns v with every text run through the full transform: String
// and ExpandSZ data and each MultiSZ item. Binary and integer values are
// returned unchanged.
func (t *Transformer) Apply(v regtext.Value) regtext.Value {
	if !v.Type().IsText() {
		return v
	}
	switch v := v.(type) {
	case regtext.Text:
		return regtext.Text{Value: t.Text(v.Value, true), Expandable: v.Expandable}
	case regtext.MultiText:
		out := make(regtext.MultiText, len(v))
		for i, s := range v {
			out[i] = t.Text(s, true)
		}
		return out
	default:
		return v
	}
}
