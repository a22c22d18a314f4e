package regtext

import (
	"regexp"
	"strings"

	"github.com/joshuapare/reginno/pkg/types"
)

// RecordKind tags what a logical line was classified as.
type RecordKind int

const (
	KindNone RecordKind = iota
	KindKey
	KindString
	KindDword
	KindExpandSZ
	KindBinary
	KindQWord
	KindMultiSZ
	KindDeleteKey   // [-HKEY_...] (unsupported)
	KindDeleteValue // "name"=- (unsupported)
)

// String returns the .reg spelling of the kind.
func (k RecordKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindDword:
		return "dword"
	case KindExpandSZ:
		return "hex(2)"
	case KindBinary:
		return "hex"
	case KindQWord:
		return "hex(b)"
	case KindMultiSZ:
		return "hex(7)"
	case KindDeleteKey:
		return "delete-key"
	case KindDeleteValue:
		return "delete-value"
	default:
		return "none"
	}
}

// RegType returns the registry type a value record of this kind carries.
func (k RecordKind) RegType() types.RegType {
	switch k {
	case KindString:
		return types.REG_SZ
	case KindDword:
		return types.REG_DWORD
	case KindExpandSZ:
		return types.REG_EXPAND_SZ
	case KindBinary:
		return types.REG_BINARY
	case KindQWord:
		return types.REG_QWORD
	case KindMultiSZ:
		return types.REG_MULTI_SZ
	default:
		return types.REG_NONE
	}
}

// IsValue reports whether records of this kind carry a decodable value.
func (k RecordKind) IsValue() bool { return k.RegType() != types.REG_NONE }

// RawRecord is one classified logical line. Hive and Key are set for key
// records; Name, Default and Payload for value records.
type RawRecord struct {
	Kind    RecordKind
	Hive    string
	Key     string
	Name    string // raw, still .reg-escaped
	Default bool   // the line used @ instead of a quoted name
	Payload string // unparsed data after the type prefix
}

// DisplayName returns the value name for messages, "@" for the default value.
func (r RawRecord) DisplayName() string {
	if r.Default {
		return DefaultValueMarker
	}
	return UnescapeRegString(r.Name)
}

// Rule pairs a line pattern with the decoder for what it matches. Decode
// is nil for records that carry no value.
type Rule struct {
	Kind    RecordKind
	Pattern *regexp.Regexp
	Decode  DecodeFunc
}

// Grammar is an ordered rule list; the first matching rule wins.
type Grammar []Rule

var (
	// valueNamePattern captures a quoted (possibly escaped) name or @, then =.
	valueNamePattern = `^\s*(?:` + regexp.QuoteMeta(Quote) + `(?P<name>(?:[^"\\]|\\.)+)` + regexp.QuoteMeta(Quote) +
		`|(?P<at>` + regexp.QuoteMeta(DefaultValueMarker) + `))\s*=\s*`
	restPattern = `(?P<value>.*?)\s*$`

	keyOpen  = `^\s*` + regexp.QuoteMeta(KeyOpenBracket)
	keyClose = regexp.QuoteMeta(KeyCloseBracket)
)

// typedValue matches a value record whose data starts with prefix, matched
// case-insensitively.
func typedValue(prefix string) *regexp.Regexp {
	return regexp.MustCompile(valueNamePattern + `(?i:` + regexp.QuoteMeta(prefix) + `)` + restPattern)
}

var defaultGrammar = Grammar{
	{Kind: KindDeleteKey, Pattern: regexp.MustCompile(keyOpen + regexp.QuoteMeta(DeleteKeyPrefix) + `(?P<key>[^\]]*)` + keyClose)},
	{Kind: KindKey, Pattern: regexp.MustCompile(keyOpen + `(?P<hive>[^\\\]]+)` + regexp.QuoteMeta(Backslash) + `(?P<key>[^\]]+)` + keyClose)},
	{Kind: KindString, Pattern: regexp.MustCompile(valueNamePattern + regexp.QuoteMeta(Quote) + `(?P<value>(?:[^"\\]|\\.)*)` + regexp.QuoteMeta(Quote)), Decode: decodeString},
	{Kind: KindDword, Pattern: typedValue(DWORDPrefix), Decode: decodeDword},
	{Kind: KindExpandSZ, Pattern: typedValue(HexExpandSZPrefix), Decode: decodeExpandSZ},
	{Kind: KindBinary, Pattern: typedValue(HexPrefix), Decode: decodeBinary},
	{Kind: KindQWord, Pattern: typedValue(HexQWORDPrefix), Decode: decodeQWord},
	{Kind: KindMultiSZ, Pattern: typedValue(HexMultiSZPrefix), Decode: decodeMultiSZ},
	{Kind: KindDeleteValue, Pattern: regexp.MustCompile(valueNamePattern + regexp.QuoteMeta(DeleteValueToken) + `\s*$`)},
}

// DefaultGrammar returns the .reg grammar: deletion headers, key headers,
// then one rule per supported value type. Lines matching none of them
// (blank lines, comments, the file header, unsupported hex(n) types) are
// not records.
func DefaultGrammar() Grammar { return defaultGrammar }

// Classify matches line against the rules in order. It reports false when
// no rule matches.
func (g Grammar) Classify(line string) (RawRecord, Rule, bool) {
	for _, rule := range g {
		m := rule.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rec := RawRecord{Kind: rule.Kind}
		for i, group := range rule.Pattern.SubexpNames() {
			switch group {
			case "hive":
				rec.Hive = m[i]
			case "key":
				rec.Key = m[i]
			case "name":
				rec.Name = m[i]
			case "at":
				rec.Default = m[i] == DefaultValueMarker
			case "value":
				rec.Payload = m[i]
			}
		}
		if rule.Kind == KindDeleteKey {
			rec.Hive, rec.Key, _ = strings.Cut(rec.Key, Backslash)
		}
		return rec, rule, true
	}
	return RawRecord{}, Rule{}, false
}
