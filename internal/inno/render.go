package inno

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/reginno/internal/regtext"
)

// ValueData renders a transformed value as an Inno ValueData literal.
func ValueData(v regtext.Value) string {
	switch v := v.(type) {
	case regtext.Text:
		return quoteLiteral(v.Value)
	case regtext.MultiText:
		items := make([]string, len(v))
		for i, s := range v {
			items[i] = doubleQuotes(s)
		}
		return quote + strings.Join(items, BreakToken) + quote
	case regtext.Integer32:
		return DwordPrefix + fmt.Sprintf(DwordFormat, uint32(v))
	case regtext.Integer64:
		return strconv.FormatUint(uint64(v), 10)
	case regtext.ByteBlob:
		parts := make([]string, len(v))
		for i, b := range v {
			parts[i] = fmt.Sprintf(BinaryByteFormat, b)
		}
		return quote + strings.Join(parts, BinaryByteSeparator) + quote
	default:
		return quote + quote
	}
}

// quoteLiteral wraps s in double quotes, doubling embedded ones.
func quoteLiteral(s string) string {
	return quote + doubleQuotes(s) + quote
}

func doubleQuotes(s string) string {
	if !strings.Contains(s, quote) {
		return s
	}
	return strings.ReplaceAll(s, quote, escapedQuote)
}

// paramValue renders an unquoted parameter, quoting it only when the bare
// form would not survive Inno's parameter parser.
func paramValue(s string) string {
	if strings.ContainsAny(s, paramSeparator+quote) || strings.TrimSpace(s) != s {
		return quoteLiteral(s)
	}
	return s
}
