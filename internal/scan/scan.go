// Package scan splits a raw XML buffer into a boundary sequence and
// classifies the tokens the boundaries delimit.
//
// A boundary is an offset into the buffer; adjacent boundaries delimit one
// token, which is either a complete tag ("<...>") or a run of content text.
// The boundary sequence is scratch state: it is filtered in place and
// discarded once the element tree is built.
package scan

import (
	"bytes"
	"errors"
)

// ErrUnterminatedComment reports a comment with no closing "-->" before
// the end of the buffer.
var ErrUnterminatedComment = errors.New("unterminated comment")

// Boundaries returns the ordered token boundary offsets for data: the start
// of the buffer, every index of a '<', every index immediately following a
// '>', plus a final sentinel at len(data).
func Boundaries(data []byte) []int {
	bounds := make([]int, 0, 16)
	bounds = append(bounds, 0)
	for i := 1; i < len(data); i++ {
		if data[i] == '<' {
			bounds = append(bounds, i)
		} else if data[i-1] == '>' {
			bounds = append(bounds, i)
		}
	}
	if bounds[len(bounds)-1] != len(data) {
		bounds = append(bounds, len(data))
	}
	return bounds
}

// RemoveGaps drops the left boundary of every adjacent pair whose delimited
// bytes consist entirely of whitespace, so that whitespace-only tokens never
// reach the tree builder.
func RemoveGaps(data []byte, bounds []int) []int {
	filtered := bounds[:0]
	for i := 0; i < len(bounds); i++ {
		if i+1 < len(bounds) && isWhitespaceRange(data, bounds[i], bounds[i+1]) {
			continue
		}
		filtered = append(filtered, bounds[i])
	}
	return filtered
}

// CollapseComments erases every boundary strictly inside a comment so that
// each "<!-- ... -->" collapses to exactly one token. A comment with no
// closing marker is an error.
func CollapseComments(data []byte, bounds []int) ([]int, error) {
	filtered := bounds[:0]
	for i := 0; i < len(bounds); {
		pos := bounds[i]
		if !isCommentStart(data, pos) {
			filtered = append(filtered, pos)
			i++
			continue
		}
		// The closing dashes may overlap the opener, so "<!-->" and
		// "<!--->" are complete comments.
		end := commentEnd(data, pos+2)
		if end < 0 {
			return nil, ErrUnterminatedComment
		}
		filtered = append(filtered, pos)
		for i++; i < len(bounds) && bounds[i] < end; i++ {
		}
	}
	return filtered, nil
}

// A '<' always carries its own boundary, so comment starts only need to be
// checked at boundary offsets.
func isCommentStart(data []byte, pos int) bool {
	return pos+3 < len(data) &&
		data[pos] == '<' && data[pos+1] == '!' && data[pos+2] == '-' && data[pos+3] == '-'
}

// commentEnd returns the offset one past the '>' of the first "-->" at or
// after from, or -1 if the comment never closes.
func commentEnd(data []byte, from int) int {
	if from > len(data) {
		return -1
	}
	off := bytes.Index(data[from:], []byte("-->"))
	if off < 0 {
		return -1
	}
	return from + off + 3
}
