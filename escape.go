package jsondom

import (
	"fmt"
	"strings"
)

// EscapeString renders s as a quoted JSON string literal. The two-character
// escapes cover quote, backslash, backspace, form feed, newline, carriage
// return, and tab; any other control byte below 0x20 becomes a \u00XX
// escape. All remaining bytes, including multi-byte UTF-8 sequences, pass
// through untouched.
//
// EscapeString does not re-validate its input; callers must supply valid
// UTF-8.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}

	b.WriteByte('"')
	return b.String()
}

// UnescapeString is the inverse of EscapeString: it strips the surrounding
// quotes and resolves every escape sequence. It fails with a syntax-class
// error when the input is not quoted, an escape designator is unrecognized,
// or a \u escape is not followed by exactly four hex digits.
//
// Surrogate pairs in \u escapes are recombined into the single
// supplementary code point; a lone surrogate half decodes to U+FFFD.
func UnescapeString(quoted string) (string, error) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", &Error{
			Op:      "unescape",
			Offset:  0,
			Message: "string literal must be wrapped in quotes",
			Code:    CodeSyntaxError,
		}
	}

	out := make([]byte, 0, len(quoted)-2)
	end := len(quoted) - 1

	i := 1
	for i < end {
		c := quoted[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= end {
			return "", &Error{
				Op:      "unescape",
				Offset:  i,
				Message: "truncated escape sequence",
				Code:    CodeSyntaxError,
			}
		}
		var err error
		out, i, err = decodeEscape(out, quoted[:end], i+1, "unescape")
		if err != nil {
			return "", err
		}
	}

	return string(out), nil
}

// decodeEscape resolves one escape sequence. s[i] is the designator byte
// that follows the backslash; scanning never runs past len(s). It returns
// the extended output buffer and the index of the first byte after the
// sequence.
func decodeEscape(dst []byte, s string, i int, op string) ([]byte, int, error) {
	switch s[i] {
	case '"':
		return append(dst, '"'), i + 1, nil
	case '\\':
		return append(dst, '\\'), i + 1, nil
	case '/':
		return append(dst, '/'), i + 1, nil
	case 'b':
		return append(dst, '\b'), i + 1, nil
	case 'f':
		return append(dst, '\f'), i + 1, nil
	case 'n':
		return append(dst, '\n'), i + 1, nil
	case 'r':
		return append(dst, '\r'), i + 1, nil
	case 't':
		return append(dst, '\t'), i + 1, nil
	case 'u':
		cp, next, ok := decodeUnicodeEscape(s, i)
		if !ok {
			return nil, 0, &Error{
				Op:      op,
				Offset:  i - 1,
				Message: `\u escape must be followed by exactly four hex digits`,
				Code:    CodeSyntaxError,
			}
		}
		return appendCodePoint(dst, cp), next, nil
	default:
		return nil, 0, &Error{
			Op:      op,
			Offset:  i - 1,
			Message: fmt.Sprintf("invalid escape sequence '\\%c'", s[i]),
			Code:    CodeSyntaxError,
		}
	}
}

// decodeUnicodeEscape decodes the \uXXXX escape whose designator 'u' sits at
// s[i], recombining a surrogate pair when the low half immediately follows.
// A lone surrogate half yields U+FFFD. On success it returns the code point
// and the index of the first byte after the consumed escape(s).
func decodeUnicodeEscape(s string, i int) (rune, int, bool) {
	cp, ok := decodeHex4(s, i+1)
	if !ok {
		return 0, 0, false
	}
	next := i + 5

	switch {
	case cp >= 0xD800 && cp <= 0xDBFF:
		// High half: a low half must follow for a full pair.
		if next+6 <= len(s) && s[next] == '\\' && s[next+1] == 'u' {
			if lo, ok := decodeHex4(s, next+2); ok && lo >= 0xDC00 && lo <= 0xDFFF {
				return 0x10000 + (cp-0xD800)<<10 + (lo - 0xDC00), next + 6, true
			}
		}
		return 0xFFFD, next, true
	case cp >= 0xDC00 && cp <= 0xDFFF:
		return 0xFFFD, next, true
	default:
		return cp, next, true
	}
}

// decodeHex4 reads four hex digits starting at s[i].
func decodeHex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var cp rune
	for j := 0; j < 4; j++ {
		d, ok := hexDigit(s[i+j])
		if !ok {
			return 0, false
		}
		cp = cp<<4 | rune(d)
	}
	return cp, true
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}
