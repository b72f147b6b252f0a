// Package text decodes resource and source files into Go strings and back,
// keeping track of the byte order mark so rewritten files keep their encoding.
package text

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies how a file was stored on disk.
type Encoding int

const (
	// UTF8 is plain UTF-8 without byte order mark.
	UTF8 Encoding = iota
	// UTF8BOM is UTF-8 preceded by EF BB BF.
	UTF8BOM
	// UTF16LE is little endian UTF-16 with byte order mark.
	UTF16LE
	// UTF16BE is big endian UTF-16 with byte order mark.
	UTF16BE
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "UTF-8 (BOM)"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "UTF-8"
	}
}

// Detect guesses the encoding of data from its byte order mark.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return UTF8BOM
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return UTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return UTF16BE
	default:
		return UTF8
	}
}

// Decode returns the text content of data without byte order mark.
func Decode(data []byte) (string, Encoding, error) {
	enc := Detect(data)

	switch enc {
	case UTF16LE, UTF16BE:
		decoded, err := utf16(enc).NewDecoder().Bytes(data)
		if err != nil {
			return "", enc, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return string(decoded), enc, nil
	case UTF8BOM:
		data = data[len(utf8BOM):]
	}

	if !utf8.Valid(data) {
		return "", enc, ErrInvalidEncoding
	}
	return string(data), enc, nil
}

// Encode converts s back to bytes in the given encoding.
func Encode(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF16LE, UTF16BE:
		return utf16(enc).NewEncoder().Bytes([]byte(s))
	case UTF8BOM:
		return append(append([]byte{}, utf8BOM...), s...), nil
	default:
		return []byte(s), nil
	}
}

func utf16(enc Encoding) encoding.Encoding {
	if enc == UTF16BE {
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
}
