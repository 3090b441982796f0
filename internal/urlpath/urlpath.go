// Package urlpath percent-encodes and percent-decodes URL path segments.
//
// Encoding is deliberately aggressive: every byte that is not an ASCII
// letter or digit is escaped, so the result is safe both as a URL path
// segment and as an HTML attribute value. Decoding is deliberately lossy:
// malformed escapes pass through unchanged instead of failing the request,
// matching permissive real-world URL handling.
package urlpath

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes every byte of s that is not an ASCII letter or
// digit. Multi-byte UTF-8 sequences are escaped byte by byte, so
// Decode(Encode(s)) == s for any string.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlphanumeric(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// Decode resolves %XX escapes in s. Escapes that are truncated or not
// valid hexadecimal are copied through verbatim rather than rejected.
func Decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isAlphanumeric(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
