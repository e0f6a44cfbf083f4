// Package charset decodes wide-character XML buffers into UTF-8.
//
// The parser core operates on UTF-8 bytes; callers holding UTF-16 or UTF-32
// encoded documents hand them through Decode, which detects the byte order
// mark and transcodes. Buffers without a recognized BOM pass through
// unchanged.
package charset

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

var (
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
)

// Decode converts data to UTF-8 according to its byte order mark, stripping
// the mark. UTF-16 and UTF-32 (either endianness) are transcoded; a UTF-8
// mark is stripped; anything else is returned as-is.
func Decode(data []byte) ([]byte, error) {
	// UTF-32LE shares its first two bytes with UTF-16LE, so check the
	// four-byte marks first.
	if bytes.HasPrefix(data, bomUTF32BE) {
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder().Bytes(data)
	}
	if bytes.HasPrefix(data, bomUTF32LE) {
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Bytes(data)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	return out, err
}
