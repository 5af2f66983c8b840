// Package codec implements the inline string encoding used by the flat
// dialog serialisation format. Encoded strings never contain the structural
// delimiter (`|`), the field separator (`:`), the escape character (`#`),
// a comma, or any byte outside the printable ASCII range, so they can be
// concatenated with those delimiters without ambiguity.
package codec

import "strings"

const escapeChar = '#'

const hexDigits = "0123456789ABCDEF"

// Bytes outside 0x20..0x7F are escaped as well, keeping archives
// byte-identical with ones written by older tooling that serialised
// non-ASCII text one escaped byte at a time.
func needsEscape(c byte) bool {
	return c <= 0x1F || c >= 0x80 || c == escapeChar || c == ',' || c == ':' || c == '|'
}

// Encode replaces every reserved byte in s with a `#XX` escape, where XX is
// the byte value as two uppercase hex digits. Decode(Encode(s)) == s for all
// inputs, including empty strings and non-printable bytes.
func Encode(s string) string {
	plain := true
	for i := 0; i < len(s); i++ {
		if needsEscape(s[i]) {
			plain = false
			break
		}
	}
	if plain {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !needsEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(escapeChar)
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	return b.String()
}

// Decode is the exact inverse of Encode. Input that breaks the escape
// grammar decodes best-effort: a `#` that is not followed by two hex digits
// is kept literally so stale or hand-edited archives degrade instead of
// failing.
func Decode(s string) string {
	if !strings.ContainsRune(s, escapeChar) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != escapeChar {
			b.WriteByte(c)
			continue
		}
		hi, okHi := unhex(byteAt(s, i+1))
		lo, okLo := unhex(byteAt(s, i+2))
		if !okHi || !okLo {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String()
}

func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
