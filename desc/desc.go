// Package desc holds the plain in-memory description types a TeaFile's
// header is built from and parsed into: Field, ItemDescription,
// ContentDescription, NameValues, TimeScale, and their aggregate
// TeaFileDescription. These are data carriers only — the layout engine
// lives in the layout package, the wire codec in the section package.
package desc

import "github.com/teafile-go/teafile/ftype"

// Field describes one named, typed slot within an item.
type Field struct {
	// Name is the raw, unsanitized name as persisted on disk.
	Name string
	// Index is the 0-based declaration position within the item.
	Index int
	// Type is the field's scalar type.
	Type ftype.Type
	// Offset is the field's byte offset within an item.
	Offset int
	// IsTime marks the field as holding a time value at the file's
	// TimeScale.
	IsTime bool
	// IsEventTime marks the field as the item's distinguished primary
	// timestamp. At most one field per item may set this.
	IsEventTime bool
}

// ItemDescription is the ordered list of Fields that make up one item,
// plus the item's name and total byte size.
type ItemDescription struct {
	Name     string
	ItemSize int
	Fields   []Field
}

// EventTimeField returns the field marked IsEventTime, if any.
func (d *ItemDescription) EventTimeField() (Field, bool) {
	for _, f := range d.Fields {
		if f.IsEventTime {
			return f, true
		}
	}

	return Field{}, false
}

// TimeFields returns all fields marked IsTime, in declaration order.
func (d *ItemDescription) TimeFields() []Field {
	var out []Field
	for _, f := range d.Fields {
		if f.IsTime {
			out = append(out, f)
		}
	}

	return out
}

// ContentDescription is optional free-form descriptive text for the file.
type ContentDescription string

// TimeScale is the (epoch, ticks-per-day) pair that interprets integer
// time fields (§3). JavaScale and NetScale are the two well-known scales;
// any other pair is permitted but has no name.
type TimeScale struct {
	EpochDays   int64
	TicksPerDay int64
}

// JavaScale is the epoch of 1970-01-01 (719162 days after 0001-01-01)
// with millisecond ticks — the
// default scale written by Create when no explicit scale is given.
var JavaScale = TimeScale{EpochDays: 719162, TicksPerDay: 86_400_000}

// NetScale is the epoch of 0001-01-01 with 100-nanosecond ticks.
var NetScale = TimeScale{EpochDays: 0, TicksPerDay: 864_000_000_000}

// NameValues is an ordered mapping from text key to one of
// {int32, float64, string, [16]byte} values. Key order is preserved
// on round-trip but is not semantically meaningful.
type NameValues struct {
	keys   []string
	values map[string]any
}

// NewNameValues returns an empty NameValues map.
func NewNameValues() *NameValues {
	return &NameValues{values: make(map[string]any)}
}

// Set stores key=value, appending key to the iteration order on first
// insertion. value must be int32, float64, string, or [16]byte.
func (nv *NameValues) Set(key string, value any) {
	if _, exists := nv.values[key]; !exists {
		nv.keys = append(nv.keys, key)
	}
	nv.values[key] = value
}

// Get returns the value stored under key, if any.
func (nv *NameValues) Get(key string) (any, bool) {
	v, ok := nv.values[key]

	return v, ok
}

// Len returns the number of entries.
func (nv *NameValues) Len() int {
	return len(nv.keys)
}

// Keys returns the keys in insertion order.
func (nv *NameValues) Keys() []string {
	return nv.keys
}

// TeaFileDescription aggregates the optional and required pieces of a
// TeaFile's self-describing metadata.
type TeaFileDescription struct {
	Item       *ItemDescription
	Content    ContentDescription
	NameValues *NameValues
	TimeScale  *TimeScale
}

// Valid reports whether d has enough information to be serialized: an
// ItemDescription with at least one field.
func (d *TeaFileDescription) Valid() bool {
	return d.Item != nil && len(d.Item.Fields) > 0
}
