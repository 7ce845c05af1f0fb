// Package layout is the item layout engine (§4.4): given ordered
// (name, type) pairs it computes per-field byte offsets and total item
// size matching native struct alignment, and provides the pack/unpack
// routines that turn a value tuple into exactly itemsize bytes and back.
package layout

import (
	"fmt"
	"strings"

	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/ftype"
)

// Build computes field offsets and total item size for fieldNames typed by
// format. An empty format applies DefaultFormat (all Int64). itemName, if
// empty, is derived via DefaultItemName.
//
// Offset determination follows the standard native-alignment rule: each
// field is placed at the smallest offset >= the running cumulative offset
// that is a multiple of the field's own size, fields in declaration order.
// The item is then padded so its total size is a multiple of the largest
// field's size.
func Build(fieldNames []string, format string, itemName string) (*desc.ItemDescription, error) {
	if len(fieldNames) == 0 {
		return nil, errs.ErrNoFields
	}

	var types []ftype.Type
	if format == "" {
		types = DefaultFormat(len(fieldNames))
	} else {
		parsed, err := ParseFormat(format)
		if err != nil {
			return nil, err
		}
		types = parsed
	}

	if len(types) != len(fieldNames) {
		return nil, fmt.Errorf("%w: %d names, %d format codes", errs.ErrFieldCountMismatch, len(fieldNames), len(types))
	}

	if err := checkDuplicateNames(fieldNames); err != nil {
		return nil, err
	}

	fields, itemSize := layOut(fieldNames, types)

	name := itemName
	if name == "" {
		name = DefaultItemName(fieldNames)
	}

	return &desc.ItemDescription{
		Name:     name,
		ItemSize: itemSize,
		Fields:   fields,
	}, nil
}

// layOut assigns offsets in declaration order and returns the padded item
// size alongside the populated fields.
func layOut(fieldNames []string, types []ftype.Type) ([]desc.Field, int) {
	fields := make([]desc.Field, len(fieldNames))
	offset := 0
	maxSize := 1

	for i, t := range types {
		size := t.Size()
		if size > maxSize {
			maxSize = size
		}

		offset = roundUp(offset, size)
		fields[i] = desc.Field{
			Name:   fieldNames[i],
			Index:  i,
			Type:   t,
			Offset: offset,
		}
		offset += size
	}

	itemSize := roundUp(offset, maxSize)

	return fields, itemSize
}

// roundUp returns the smallest multiple of size that is >= v. size == 0 is
// treated as 1 to avoid division by zero for degenerate callers.
func roundUp(v, size int) int {
	if size <= 0 {
		size = 1
	}
	if rem := v % size; rem != 0 {
		v += size - rem
	}

	return v
}

func checkDuplicateNames(fieldNames []string) error {
	seen := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		key := SanitizeName(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateFieldName, name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// MarkEventTime finds the first field named "time" case-insensitively and
// marks it IsTime and IsEventTime, leaving all other fields untouched. It
// is a no-op if no field matches. Create uses it to pick the item's sole
// time field, which header.Write then records in the Time section (§4.7).
func MarkEventTime(item *desc.ItemDescription) {
	for i := range item.Fields {
		if strings.EqualFold(item.Fields[i].Name, "time") {
			item.Fields[i].IsTime = true
			item.Fields[i].IsEventTime = true

			return
		}
	}
}
