// Package ftype defines the closed enumeration of scalar field types a
// TeaFile item field may hold: their on-disk type tag, their size in
// bytes, and the format-string code used to request them.
package ftype

import "github.com/teafile-go/teafile/errs"

// Type identifies one of the 10 scalar field types supported by an item.
// Values are stable on-disk tags; they must never be renumbered.
type Type uint8

const (
	Int8 Type = iota + 1
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
)

// sizes holds the fixed byte size of each type, indexed by Type.
var sizes = map[Type]int{
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	UInt8:   1,
	UInt16:  2,
	UInt32:  4,
	UInt64:  8,
	Float32: 4,
	Float64: 8,
}

// codes maps the format-string alphabet (§4.4) to a Type. The alphabet is
// closed: any other rune is rejected during format-string parsing.
var codes = map[byte]Type{
	'b': Int8,
	'h': Int16,
	'i': Int32,
	'q': Int64,
	'B': UInt8,
	'H': UInt16,
	'I': UInt32,
	'Q': UInt64,
	'f': Float32,
	'd': Float64,
}

var typeToCode = func() map[Type]byte {
	m := make(map[Type]byte, len(codes))
	for code, t := range codes {
		m[t] = code
	}

	return m
}()

// Size returns the fixed byte size of t, or 0 if t is not a known type.
func (t Type) Size() int {
	return sizes[t]
}

// Valid reports whether t is one of the 10 known scalar types.
func (t Type) Valid() bool {
	_, ok := sizes[t]

	return ok
}

// Code returns the format-string character for t.
func (t Type) Code() byte {
	return typeToCode[t]
}

func (t Type) String() string {
	switch t {
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// FromCode resolves a single format-string character to its Type.
// Returns errs.ErrInvalidFormatString if the character is outside the
// allowed alphabet.
func FromCode(code byte) (Type, error) {
	t, ok := codes[code]
	if !ok {
		return 0, errs.ErrInvalidFormatString
	}

	return t, nil
}

// FromTag resolves an on-disk type tag (as persisted in an Item section)
// to a Type. Returns errs.ErrInvalidFieldType if the tag is unknown.
func FromTag(tag int32) (Type, error) {
	t := Type(tag) //nolint:gosec
	if !t.Valid() {
		return 0, errs.ErrInvalidFieldType
	}

	return t, nil
}
