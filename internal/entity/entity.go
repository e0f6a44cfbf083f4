// Package entity maps the five predefined XML entity references to their
// literal characters and back.
//
// Each entity has three accepted spellings: named, decimal numeric, and hex
// numeric. Escaping always emits the named spelling.
package entity

import "strings"

type ref struct {
	spellings [3]string
	literal   byte
}

var table = [5]ref{
	{spellings: [3]string{"&amp;", "&#38;", "&#x26;"}, literal: '&'},
	{spellings: [3]string{"&lt;", "&#60;", "&#x3C;"}, literal: '<'},
	{spellings: [3]string{"&gt;", "&#62;", "&#x3E;"}, literal: '>'},
	{spellings: [3]string{"&quot;", "&#34;", "&#x22;"}, literal: '"'},
	{spellings: [3]string{"&apos;", "&#39;", "&#x27;"}, literal: '\''},
}

// Match reports whether data begins with one of the entity spellings.
// It returns the literal replacement character and the matched length,
// or (0, 0) if no spelling matches.
func Match(data []byte) (byte, int) {
	if len(data) == 0 || data[0] != '&' {
		return 0, 0
	}
	for _, r := range table {
		for _, spelling := range r.spellings {
			if len(data) >= len(spelling) && string(data[:len(spelling)]) == spelling {
				return r.literal, len(spelling)
			}
		}
	}
	return 0, 0
}

// Substitute replaces every entity reference in s with its literal
// character, left to right. Scanning resumes at the replacement point, so
// a reference that a replacement uncovers is resolved as well.
func Substitute(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); {
		if b[i] != '&' {
			i++
			continue
		}
		lit, n := Match(b[i:])
		if n == 0 {
			i++
			continue
		}
		b[i] = lit
		b = append(b[:i+1], b[i+n:]...)
	}
	return string(b)
}

// Escape replaces every reserved character in s with its named entity
// spelling. The numeric spellings are never emitted.
func Escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if esc := escapeByte(s[i]); esc != "" {
			if sb.Cap() == 0 {
				sb.Grow(len(s) + 8)
				sb.WriteString(s[:i])
			}
			sb.WriteString(esc)
			continue
		}
		if sb.Cap() != 0 {
			sb.WriteByte(s[i])
		}
	}
	if sb.Cap() == 0 {
		return s
	}
	return sb.String()
}

func escapeByte(b byte) string {
	for _, r := range table {
		if r.literal == b {
			return r.spellings[0]
		}
	}
	return ""
}
