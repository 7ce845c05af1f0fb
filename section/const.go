// Package section implements the four section kinds embedded in a
// TeaFile header (§4.6): Item, Time, Content, and NameValue. Each
// section is a stable numeric id, an Int32 payload length, and a
// payload; readers that encounter an unrecognized id skip exactly the
// declared payload length and continue, which is what makes the header
// format forward-compatible.
package section

// Section ids, stable on disk (§4.6).
const (
	IDItem      int32 = 0x0A
	IDTime      int32 = 0x40
	IDContent   int32 = 0x80
	IDNameValue int32 = 0x81
)
