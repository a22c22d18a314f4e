package regtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/reginno/pkg/types"
)

// NewDecodingReader wraps r so it yields UTF-8 text. A leading UTF-8 or
// UTF-16 BOM always wins and is stripped; otherwise enc selects the decoding
// ("", "auto" and "utf8" mean UTF-8).
//
// regedit on Windows 2000 and later exports UTF-16LE with a BOM, REGEDIT4
// files are in the ANSI code page, so both have to be readable.
func NewDecodingReader(r io.Reader, enc string) (io.Reader, error) {
	fallback, err := fallbackEncoding(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback.NewDecoder())), nil
}

// NormalizeEncoding returns the canonical name for an input encoding.
// Matching ignores case and dashes, "" means EncodingAuto and cp1252 is an
// alias of EncodingWindows1252.
func NormalizeEncoding(enc string) (string, error) {
	switch name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(enc), "-", "")); name {
	case "", EncodingAuto:
		return EncodingAuto, nil
	case EncodingUTF8, EncodingUTF16LE, EncodingWindows1252:
		return name, nil
	case "cp1252":
		return EncodingWindows1252, nil
	default:
		return "", types.Wrap(types.ErrUnsupportedEncoding, fmt.Errorf("%q", enc))
	}
}

func fallbackEncoding(enc string) (encoding.Encoding, error) {
	name, err := NormalizeEncoding(enc)
	if err != nil {
		return nil, err
	}
	switch name {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	default:
		return unicode.UTF8, nil
	}
}

// Line is one logical line of a .reg document.
type Line struct {
	Text   string // physical lines joined, continuation markers removed
	Number int    // 1-based number of the first physical line
}

// LineAssembler turns physical lines into logical lines by joining
// backslash continuations. It is a single-pass iterator in the style of
// bufio.Scanner:
//
//	la := regtext.NewLineAssembler(r)
//	for la.Next() {
//	    line := la.Line()
//	}
//	if err := la.Err(); err != nil { ... }
type LineAssembler struct {
	sc       *bufio.Scanner
	physical int
	cur      Line
	err      error
}

// NewLineAssembler reads physical lines from r, which must already yield
// UTF-8 (see NewDecodingReader).
func NewLineAssembler(r io.Reader) *LineAssembler {
	sc := bufio.NewScanner(r)
	// Increase buffer size for long lines (some .reg files have huge binary values)
	sc.Buffer(make([]byte, 0, ScannerInitialBufferSize), ScannerMaxLineSize)
	return &LineAssembler{sc: sc}
}

// Next advances to the next logical line. It returns false when the input
// is exhausted or a read error occurred.
func (a *LineAssembler) Next() bool {
	if a.err != nil || !a.sc.Scan() {
		a.setErr(a.sc.Err())
		return false
	}
	a.physical++
	start := a.physical
	text := a.sc.Text()

	var b strings.Builder
	for strings.HasSuffix(text, ContinuationMarker) {
		b.WriteString(strings.TrimSuffix(text, ContinuationMarker))
		if !a.sc.Scan() {
			// Input ended inside a continuation; keep what we have.
			a.setErr(a.sc.Err())
			text = ""
			break
		}
		a.physical++
		text = strings.TrimLeft(a.sc.Text(), " \t")
	}
	if b.Len() > 0 {
		b.WriteString(text)
		text = b.String()
	}
	a.cur = Line{Text: text, Number: start}
	return true
}

// Line returns the logical line produced by the last successful Next.
func (a *LineAssembler) Line() Line { return a.cur }

// Err returns the first read error, if any.
func (a *LineAssembler) Err() error { return a.err }

func (a *LineAssembler) setErr(err error) {
	if err == nil || a.err != nil {
		return
	}
	if errors.Is(err, bufio.ErrTooLong) {
		a.err = &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("line %d exceeds %d bytes", a.physical+1, ScannerMaxLineSize),
			Err:  err,
		}
		return
	}
	a.err = &types.Error{Kind: types.ErrKindIO, Msg: "reading .reg input", Err: err}
}
