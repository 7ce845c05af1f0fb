package layout

import (
	"regexp"
	"strings"

	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/ftype"
)

// nonIdentifierChar matches any byte outside [A-Za-z0-9_], dropped during
// name sanitization (§4.4).
var nonIdentifierChar = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeName strips every character outside [A-Za-z0-9_] from name. The
// result is used only for generated accessor identifiers; the raw name is
// always what gets persisted to disk.
func SanitizeName(name string) string {
	return nonIdentifierChar.ReplaceAllString(name, "")
}

// DefaultItemName forms the fallback item name by concatenating the first
// character of each field name, in declaration order.
func DefaultItemName(fieldNames []string) string {
	var b strings.Builder
	for _, name := range fieldNames {
		for _, r := range name {
			b.WriteRune(r)

			break
		}
	}

	return b.String()
}

// ParseFormat decodes a format string into one ftype.Type per character.
// The allowed alphabet is exactly ftype's ten type codes (§4.4); repetition
// counts ("3q") and byte-order/alignment prefixes ("<qqq") are rejected
// with errs.ErrInvalidFormatString since every character must itself be a
// valid type code.
func ParseFormat(format string) ([]ftype.Type, error) {
	types := make([]ftype.Type, 0, len(format))
	for i := 0; i < len(format); i++ {
		t, err := ftype.FromCode(format[i])
		if err != nil {
			return nil, errs.ErrInvalidFormatString
		}
		types = append(types, t)
	}

	return types, nil
}

// DefaultFormat returns n copies of the Int64 type, the default applied
// when the caller supplies field names but no per-field types (§4.4).
func DefaultFormat(n int) []ftype.Type {
	types := make([]ftype.Type, n)
	for i := range types {
		types[i] = ftype.Int64
	}

	return types
}
