// Package xmltree parses XML text into a navigable in-memory element tree,
// supports programmatic construction and mutation of such a tree, and
// renders a tree back into well-formed XML text.
//
// The parser is permissive: closing tag names are not matched against their
// opening tags, text after the root element closes is ignored, and no
// DTD/schema validation is performed. Comments and whitespace-only text are
// dropped. Entity references for the five predefined XML entities are
// substituted in content by default.
package xmltree

import (
	"fmt"
	"io"

	"github.com/jharte/xmltree/internal/charset"
)

// Parse parses a UTF-8 buffer holding one XML document.
func Parse(data []byte, opts ...Options) (*Document, error) {
	return parse(data, resolveParseOptions(JoinOptions(opts...)))
}

// ParseString parses a UTF-8 string holding one XML document.
func ParseString(s string, opts ...Options) (*Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r to completion, decodes UTF-16/32 input by its byte
// order mark (or through the configured charset reader), and parses the
// result. Parsing itself never performs I/O.
func ParseReader(r io.Reader, opts ...Options) (*Document, error) {
	resolved := resolveParseOptions(JoinOptions(opts...))

	if resolved.charsetReader != nil {
		decoded, err := resolved.charsetReader(r)
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
		r = decoded
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if resolved.charsetReader == nil {
		data, err = charset.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}
	return parse(data, resolved)
}
