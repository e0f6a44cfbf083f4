package scan

// Kind is a bitmask identifying the syntactic kind of a token.
type Kind byte

const (
	// KindError marks a tag with no closing '>'.
	KindError Kind = 0x00
	// KindOpen marks an opening tag.
	KindOpen Kind = 0x01
	// KindClose marks a closing tag. A self-closing tag carries
	// KindOpen|KindClose.
	KindClose Kind = 0x02
	// KindContent marks free text between tags.
	KindContent Kind = 0x04
	// KindComment marks a collapsed "<!-- ... -->" token.
	KindComment Kind = 0x08
)

// Attr is one attribute key/value pair in document order.
type Attr struct {
	Key   string
	Value string
}

// Classify determines the kind of the token data[lo:hi].
func Classify(data []byte, lo, hi int) Kind {
	if lo >= hi {
		return KindError
	}
	if data[lo] != '<' {
		return KindContent
	}
	if lo+1 < hi && data[lo+1] == '/' {
		return KindClose
	}
	if isCommentStart(data, lo) {
		return KindComment
	}

	// roll forward to the closing '>'
	i := lo
	for i < hi && data[i] != '>' {
		i++
	}
	if i == hi {
		return KindError
	}

	kind := KindOpen
	if data[i-1] == '/' {
		kind |= KindClose
	}
	return kind
}

// Name extracts the element name from the tag data[lo:hi], which must start
// with '<'. The name runs until whitespace, '>', or '/'.
func Name(data []byte, lo, hi int) string {
	i := lo + 1
	j := i
	for j < hi && !isSpace(data[j]) && data[j] != '>' && data[j] != '/' {
		j++
	}
	return string(data[i:j])
}

// Attributes extracts the attribute pairs from the tag data[lo:hi] in
// document order. A key is a run starting with an ASCII letter up to '=';
// the value is delimited by a matching '"' or '\'' (the opening quote
// character determines the closing delimiter). Duplicate keys are returned
// as-is; the caller decides which occurrence wins.
func Attributes(data []byte, lo, hi int) []Attr {
	i := lo
	for i < hi && !isSpace(data[i]) && data[i] != '>' {
		i++
	}

	var attrs []Attr
	keyBegin, keyEnd := -1, -1
	valBegin := -1
	var quote byte

	for ; i < hi && data[i] != '>'; i++ {
		b := data[i]
		if isAlpha(b) && keyBegin < 0 {
			keyBegin = i
			continue
		}
		if b == '=' && keyBegin >= 0 && valBegin < 0 {
			keyEnd = i
			if i+1 < hi && (data[i+1] == '"' || data[i+1] == '\'') {
				quote = data[i+1]
				valBegin = i + 2
				i++
			}
			continue
		}
		if b == quote && valBegin >= 0 {
			attrs = append(attrs, Attr{
				Key:   string(data[keyBegin:keyEnd]),
				Value: string(data[valBegin:i]),
			})
			keyBegin, keyEnd, valBegin = -1, -1, -1
			quote = 0
		}
	}
	return attrs
}
