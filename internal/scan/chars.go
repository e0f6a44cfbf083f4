package scan

import "unicode/utf8"

var spaceByteLUT = [utf8.RuneSelf]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

var alphaByteLUT = [utf8.RuneSelf]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

func isSpace(b byte) bool {
	return b < utf8.RuneSelf && spaceByteLUT[b]
}

func isAlpha(b byte) bool {
	return b < utf8.RuneSelf && alphaByteLUT[b]
}

func isWhitespaceRange(data []byte, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if !isSpace(data[i]) {
			return false
		}
	}
	return true
}
