package inno

import (
	"fmt"
	"io"
	"strings"
)

// Directive is one [Registry] entry.
type Directive struct {
	Root      string // short hive token, "" for unknown hives
	Subkey    string // brace-escaped key path
	ValueName string // brace-escaped name; ignored when Default is set
	Default   bool   // the unnamed value; ValueName is omitted
	ValueType string // string, dword, expandsz, binary, qword, multisz
	ValueData string // rendered literal, see ValueData
}

// String renders the directive as one line without a line ending.
func (d Directive) String() string {
	var b strings.Builder
	b.Grow(96 + len(d.Subkey) + len(d.ValueName) + len(d.ValueData))
	b.WriteString("Root: ")
	b.WriteString(d.Root)
	b.WriteString("; Subkey: ")
	b.WriteString(quoteLiteral(d.Subkey))
	if !d.Default {
		b.WriteString("; ValueName: ")
		b.WriteString(paramValue(d.ValueName))
	}
	b.WriteString("; ValueType: ")
	b.WriteString(d.ValueType)
	b.WriteString("; ValueData: ")
	b.WriteString(d.ValueData)
	b.WriteString("; Flags: ")
	b.WriteString(UninstallFlags)
	b.WriteString(paramSeparator)
	return b.String()
}

// EmitterOptions controls output layout.
type EmitterOptions struct {
	// LineEnding terminates every line. Default: CRLF
	LineEnding string
}

// Emitter writes a destination document: the section header exactly once,
// then one line per directive in the order given.
type Emitter struct {
	w          io.Writer
	eol        string
	headerDone bool
	count      int
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer, opts EmitterOptions) *Emitter {
	eol := opts.LineEnding
	if eol == "" {
		eol = CRLF
	}
	return &Emitter{w: w, eol: eol}
}

// Emit writes d, preceded by the section header on first use.
func (e *Emitter) Emit(d Directive) error {
	if err := e.header(); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, d.String()+e.eol); err != nil {
		return fmt.Errorf("write directive: %w", err)
	}
	e.count++
	return nil
}

// Finish makes sure the header was written, so a document without any
// values is still a valid section.
func (e *Emitter) Finish() error {
	return e.header()
}

// Count returns the number of directives written.
func (e *Emitter) Count() int { return e.count }

func (e *Emitter) header() error {
	if e.headerDone {
		return nil
	}
	if _, err := io.WriteString(e.w, SectionHeader+e.eol); err != nil {
		return fmt.Errorf("write section header: %w", err)
	}
	e.headerDone = true
	return nil
}
