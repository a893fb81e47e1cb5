package jsondom

// ValidUTF8 reports whether s is a well-formed UTF-8 byte sequence.
//
// The walk rejects invalid leading bytes, truncated sequences, continuation
// bytes that do not match 10xxxxxx, overlong encodings, surrogate code
// points (U+D800 through U+DFFF) encoded directly, and code points beyond
// U+10FFFF.
func ValidUTF8(s string) bool {
	for i := 0; i < len(s); {
		b := s[i]

		// 1-byte sequence (0x00-0x7F)
		if b&0x80 == 0 {
			i++
			continue
		}

		var size int
		switch {
		case b&0xE0 == 0xC0:
			size = 2
		case b&0xF0 == 0xE0:
			size = 3
		case b&0xF8 == 0xF0:
			size = 4
		default:
			// Invalid leading byte (continuation byte or 0xF8-0xFF)
			return false
		}

		if i+size > len(s) {
			return false
		}
		for j := 1; j < size; j++ {
			if s[i+j]&0xC0 != 0x80 {
				return false
			}
		}

		var cp rune
		switch size {
		case 2:
			cp = rune(b&0x1F)<<6 | rune(s[i+1]&0x3F)
			if cp < 0x80 {
				return false // overlong
			}
		case 3:
			cp = rune(b&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F)
			if cp < 0x800 {
				return false // overlong
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				return false // surrogate half
			}
		case 4:
			cp = rune(b&0x07)<<18 | rune(s[i+1]&0x3F)<<12 | rune(s[i+2]&0x3F)<<6 | rune(s[i+3]&0x3F)
			if cp < 0x10000 {
				return false // overlong
			}
			if cp > 0x10FFFF {
				return false
			}
		}

		i += size
	}
	return true
}

// appendCodePoint appends the UTF-8 encoding of cp to dst using the
// byte-count-by-range scheme. cp must be in [0, 0x10FFFF].
func appendCodePoint(dst []byte, cp rune) []byte {
	switch {
	case cp <= 0x7F:
		return append(dst, byte(cp))
	case cp <= 0x7FF:
		return append(dst,
			byte(0xC0|cp>>6&0x1F),
			byte(0x80|cp&0x3F))
	case cp <= 0xFFFF:
		return append(dst,
			byte(0xE0|cp>>12&0x0F),
			byte(0x80|cp>>6&0x3F),
			byte(0x80|cp&0x3F))
	default:
		return append(dst,
			byte(0xF0|cp>>18&0x07),
			byte(0x80|cp>>12&0x3F),
			byte(0x80|cp>>6&0x3F),
			byte(0x80|cp&0x3F))
	}
}
