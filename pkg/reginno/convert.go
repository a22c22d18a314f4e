package reginno

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joshuapare/reginno/internal/inno"
	"github.com/joshuapare/reginno/internal/logging"
	"github.com/joshuapare/reginno/internal/regtext"
	"github.com/joshuapare/reginno/internal/writer"
	"github.com/joshuapare/reginno/pkg/types"
)

// Converter runs the line pipeline. A Converter holds no per-run state and
// can be reused for any number of documents.
type Converter struct {
	grammar     regtext.Grammar
	transformer *inno.Transformer
	encoding    string
	eol         string
	log         *slog.Logger
}

// NewConverter returns a Converter for opts. Substitution defaults are not
// applied here; see ConvertFile.
func NewConverter(opts Options) *Converter {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Converter{
		grammar:     regtext.DefaultGrammar(),
		transformer: inno.NewTransformer(opts.substitution()),
		encoding:    opts.InputEncoding,
		eol:         opts.LineEnding,
		log:         log,
	}
}

// Convert reads a .reg document from r and writes the [Registry] section to
// w. The returned Stats are valid even when err is non-nil and describe
// everything processed before the failure.
func (c *Converter) Convert(r io.Reader, w io.Writer) (*Stats, error) {
	stats := newStats()

	in, err := regtext.NewDecodingReader(r, c.encoding)
	if err != nil {
		return stats, err
	}

	em := inno.NewEmitter(w, inno.EmitterOptions{LineEnding: c.eol})
	la := regtext.NewLineAssembler(in)
	var pc ParseContext

	for la.Next() {
		stats.Lines++
		if err := c.processLine(&pc, la.Line(), em, stats); err != nil {
			return stats, err
		}
	}
	if err := la.Err(); err != nil {
		return stats, err
	}
	if err := em.Finish(); err != nil {
		return stats, err
	}

	c.log.Info("conversion finished",
		"lines", stats.Lines,
		"keys", stats.Keys,
		"directives", stats.Directives,
		"values", stats.Values,
		"skipped", stats.Skipped,
		"unsupported", stats.Unsupported)
	return stats, nil
}

func (c *Converter) processLine(pc *ParseContext, line regtext.Line, em *inno.Emitter, stats *Stats) error {
	rec, rule, ok := c.grammar.Classify(line.Text)
	if !ok {
		trimmed := strings.TrimSpace(line.Text)
		switch {
		case trimmed == "":
		case trimmed == regtext.RegFileHeader || trimmed == regtext.RegFileHeaderV4:
			stats.Skipped++
			c.log.Debug("file header", "line", line.Number, "header", trimmed)
		case strings.HasPrefix(trimmed, regtext.CommentPrefix):
			stats.Skipped++
			c.log.Debug("skipping comment", "line", line.Number)
		default:
			stats.Skipped++
			c.log.Debug("skipping line", "line", line.Number, "text", line.Text)
		}
		return nil
	}

	if rec.Kind == regtext.KindKey {
		pc.Enter(rec.Hive, rec.Key)
		stats.Keys++
		c.log.Debug("key", "line", line.Number, "hive", rec.Hive, "key", rec.Key)
		if !inno.KnownRoot(rec.Hive) {
			stats.UnknownHives++
			c.log.Warn("unknown hive, Root will be empty", "line", line.Number, "hive", rec.Hive)
		}
		return nil
	}

	if !rec.Kind.IsValue() {
		stats.Unsupported++
		c.log.Warn("deletion records are not supported, skipping",
			"line", line.Number, "kind", rec.Kind.String(), "hive", rec.Hive, "key", rec.Key, "name", rec.DisplayName())
		return nil
	}

	if !pc.Established() {
		return newRecordError(line, pc, rec, types.ErrNoKeyContext)
	}

	v, err := rule.Decode(rec.Payload)
	if err != nil {
		return newRecordError(line, pc, rec, err)
	}
	v = c.transformer.Apply(v)

	d := inno.Directive{
		Root:      inno.ShortRoot(pc.Hive),
		Subkey:    inno.EscapeBraces(pc.Key),
		Default:   rec.Default,
		ValueType: v.Type().InnoTag(),
		ValueData: inno.ValueData(v),
	}
	if !rec.Default {
		d.ValueName = c.transformer.Name(rec.Name)
	}
	if err := em.Emit(d); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "writing [Registry] section", Err: err}
	}
	stats.Values[v.Type().InnoTag()]++
	stats.Directives = em.Count()
	return nil
}

// Convert is shorthand for NewConverter(opts).Convert(r, w).
func Convert(r io.Reader, w io.Writer, opts Options) (*Stats, error) {
	return NewConverter(opts).Convert(r, w)
}

// ConvertBytes converts an in-memory document.
func ConvertBytes(src []byte, opts Options) ([]byte, *Stats, error) {
	var out bytes.Buffer
	stats, err := Convert(bytes.NewReader(src), &out, opts)
	return out.Bytes(), stats, err
}

// ConvertString converts an in-memory document held in a string.
func ConvertString(src string, opts Options) (string, *Stats, error) {
	var out strings.Builder
	stats, err := Convert(strings.NewReader(src), &out, opts)
	return out.String(), stats, err
}

// ConvertFile converts the document at inPath and writes it to outPath,
// creating or truncating it. When opts.Substitution is nil and
// substitution is not disabled, the directory containing inPath maps to
// DefaultPlaceholder.
//
// On failure outPath keeps the lines written before the failing record.
func ConvertFile(inPath, outPath string, opts Options) (*Stats, error) {
	if opts.Substitution == nil && !opts.NoSubstitution {
		sub, err := DefaultSubstitution(inPath)
		if err != nil {
			return newStats(), err
		}
		opts.Substitution = &sub
	}

	in, err := openInput(inPath)
	if err != nil {
		return newStats(), err
	}
	defer in.Close()

	sink, err := writer.Create(outPath, writer.Options{WithBOM: opts.WithBOM})
	if err != nil {
		return newStats(), &types.Error{Kind: types.ErrKindIO, Msg: "opening output", Err: err}
	}
	return convertTo(in, sink, opts)
}

// ConvertFileTo converts the document at inPath and writes it to w.
func ConvertFileTo(inPath string, w io.Writer, opts Options) (*Stats, error) {
	if opts.Substitution == nil && !opts.NoSubstitution {
		sub, err := DefaultSubstitution(inPath)
		if err != nil {
			return newStats(), err
		}
		opts.Substitution = &sub
	}

	in, err := openInput(inPath)
	if err != nil {
		return newStats(), err
	}
	defer in.Close()

	return convertTo(in, writer.New(w, writer.Options{WithBOM: opts.WithBOM}), opts)
}

func convertTo(in io.Reader, sink *writer.Sink, opts Options) (*Stats, error) {
	stats, err := Convert(in, sink, opts)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = &types.Error{Kind: types.ErrKindIO, Msg: "closing output", Err: cerr}
	}
	return stats, err
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "opening input", Err: err}
	}
	return f, nil
}
