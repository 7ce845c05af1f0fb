package section

import "github.com/teafile-go/teafile/codec"

// WriteContent writes the Content section (§4.6): a single length-prefixed
// UTF-8 text payload.
func WriteContent(fc *codec.FormattedCodec, content string) error {
	return WriteSection(fc, IDContent, func(fc *codec.FormattedCodec) error {
		return fc.WriteText(content)
	})
}

// ReadContent parses a Content section payload of exactly h.PayloadSize
// bytes.
func ReadContent(fc *codec.FormattedCodec, h Header) (string, error) {
	before, err := fc.Pos()
	if err != nil {
		return "", err
	}

	text, err := fc.ReadText()
	if err != nil {
		return "", err
	}

	after, err := fc.Pos()
	if err != nil {
		return "", err
	}
	if err := checkOverrun(before, after, h.PayloadSize); err != nil {
		return "", err
	}

	return text, nil
}
