package jsondom

import (
	"fmt"
	"strconv"
)

// parser is a single-pass recursive-descent reader over an immutable input
// buffer. State is just the input and a byte cursor; lookahead is one token
// via peek.
type parser struct {
	input string
	pos   int
}

// Parse reads exactly one JSON value from input and requires end of input
// after it (trailing whitespace excepted). On failure the returned error is
// an *Error carrying the byte offset of the first error and a descriptive
// message: ErrSyntaxError for trailing garbage, ErrParseError for every
// failure inside the value.
func Parse(input string) (*Value, error) {
	p := &parser{input: input}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()
	if p.pos < len(p.input) {
		return nil, &Error{
			Op:      "parse",
			Offset:  p.pos,
			Message: fmt.Sprintf("unexpected trailing characters at position %d", p.pos),
			Code:    CodeSyntaxError,
		}
	}

	return value, nil
}

// ParseBytes parses a UTF-8 byte buffer. See Parse.
func ParseBytes(input []byte) (*Value, error) {
	return Parse(string(input))
}

// ParseResult is the Result-typed view of Parse used by handle oriented
// wrappers that work in error kinds rather than Go errors.
func ParseResult(input string) Result[*Value] {
	value, err := Parse(input)
	if err != nil {
		return Fail[*Value](CodeOf(err))
	}
	return Ok(value)
}

// syntaxError builds the uniform parse failure at the given offset.
func (p *parser) syntaxError(offset int, message string) *Error {
	return &Error{Op: "parse", Offset: offset, Message: message, Code: CodeParseError}
}

// skipWhitespace advances the cursor past JSON whitespace.
func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the next non-whitespace byte without consuming it, with ok
// false at end of input.
func (p *parser) peek() (byte, bool) {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// consume returns the next non-whitespace byte and advances past it.
func (p *parser) consume() (byte, bool) {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	c := p.input[p.pos]
	p.pos++
	return c, true
}

// expect consumes the next token byte and fails unless it matches want.
func (p *parser) expect(want byte) error {
	c, ok := p.consume()
	if !ok {
		return p.syntaxError(p.pos, fmt.Sprintf("expected '%c' but found end of input", want))
	}
	if c != want {
		return p.syntaxError(p.pos-1, fmt.Sprintf("expected '%c' but found '%c'", want, c))
	}
	return nil
}

// parseValue dispatches on the first non-whitespace byte.
func (p *parser) parseValue() (*Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.syntaxError(p.pos, "unexpected end of input")
	}

	switch c {
	case '"':
		return p.parseString()
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case 't', 'f':
		return p.parseBool()
	case 'n':
		return p.parseNull()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.parseNumber()
	default:
		return nil, p.syntaxError(p.pos, fmt.Sprintf("unexpected character '%c'", c))
	}
}

// parseRawString reads a quoted string literal starting at the cursor and
// returns its decoded content. Bytes inside the literal are read verbatim;
// whitespace skipping applies only up to the opening quote.
func (p *parser) parseRawString() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}

	var out []byte
	for {
		if p.pos >= len(p.input) {
			return "", p.syntaxError(p.pos, "unterminated string literal")
		}
		c := p.input[p.pos]
		p.pos++

		switch c {
		case '"':
			return string(out), nil
		case '\\':
			if p.pos >= len(p.input) {
				return "", p.syntaxError(p.pos, "unterminated string literal")
			}
			var err error
			out, p.pos, err = decodeEscape(out, p.input, p.pos, "parse")
			if err != nil {
				// Escape errors are already positioned syntax errors;
				// re-tag them as parse failures for the uniform surface.
				if de, ok := err.(*Error); ok {
					de.Code = CodeParseError
				}
				return "", err
			}
		default:
			out = append(out, c)
		}
	}
}

// parseString reads a string literal into a string node, enforcing the
// UTF-8 validity invariant on the decoded payload.
func (p *parser) parseString() (*Value, error) {
	start := p.pos
	raw, err := p.parseRawString()
	if err != nil {
		return nil, err
	}
	value, err := NewString(raw)
	if err != nil {
		return nil, p.syntaxError(start, "invalid UTF-8 sequence in string literal")
	}
	return value, nil
}

// parseNumber reads a numeric literal under the strict JSON grammar:
//
//	number := "-"? ("0" | digit+) ("." digit+)? (("e"|"E") ("+"|"-")? digit+)?
func (p *parser) parseNumber() (*Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.syntaxError(p.pos, "invalid number format")
	}
	start := p.pos
	if c == '-' {
		p.pos++
	}

	// Integer part. A leading 0 is only valid alone.
	c, ok = p.current()
	switch {
	case !ok:
		return nil, p.syntaxError(p.pos, "invalid number format")
	case c == '0':
		p.pos++
	case c >= '1' && c <= '9':
		for {
			c, ok = p.current()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	default:
		return nil, p.syntaxError(p.pos, "invalid number format")
	}

	// Fractional part.
	if c, ok = p.current(); ok && c == '.' {
		p.pos++
		if c, ok = p.current(); !ok || c < '0' || c > '9' {
			return nil, p.syntaxError(p.pos, "invalid number format - expected digit after decimal point")
		}
		for {
			c, ok = p.current()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	}

	// Exponent.
	if c, ok = p.current(); ok && (c == 'e' || c == 'E') {
		p.pos++
		if c, ok = p.current(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		if c, ok = p.current(); !ok || c < '0' || c > '9' {
			return nil, p.syntaxError(p.pos, "invalid number format - expected digit in exponent")
		}
		for {
			c, ok = p.current()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	}

	literal := p.input[start:p.pos]
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, p.syntaxError(start, fmt.Sprintf("invalid number literal %q", literal))
	}
	return NewNumber(f), nil
}

// current returns the byte under the cursor without whitespace skipping.
func (p *parser) current() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseBool reads the "true" or "false" literal.
func (p *parser) parseBool() (*Value, error) {
	c, _ := p.peek()
	if c == 't' {
		if err := p.expectLiteral("true"); err != nil {
			return nil, err
		}
		return NewBool(true), nil
	}
	if err := p.expectLiteral("false"); err != nil {
		return nil, err
	}
	return NewBool(false), nil
}

// parseNull reads the "null" literal.
func (p *parser) parseNull() (*Value, error) {
	if err := p.expectLiteral("null"); err != nil {
		return nil, err
	}
	return NewNull(), nil
}

func (p *parser) expectLiteral(literal string) error {
	for i := 0; i < len(literal); i++ {
		if err := p.expect(literal[i]); err != nil {
			return err
		}
	}
	return nil
}

// parseArray reads "[" ws (value ws ("," ws value)*)? ws "]". A comma must
// always be followed by another value; trailing commas are rejected.
func (p *parser) parseArray() (*Value, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}

	array := NewArray()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return array, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		array.arrVal = append(array.arrVal, elem)

		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.syntaxError(p.pos, "expected ',' or ']' in array")
		case c == ']':
			p.pos++
			return array, nil
		case c == ',':
			p.pos++
		default:
			return nil, p.syntaxError(p.pos, "expected ',' or ']' in array")
		}
	}
}

// parseObject reads "{" ws (member ("," ws member)*)? ws "}" where
// member := string ws ":" ws value. Duplicate keys replace earlier members.
func (p *parser) parseObject() (*Value, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	object := NewObject()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return object, nil
	}

	for {
		keyStart := p.pos
		key, err := p.parseRawString()
		if err != nil {
			return nil, err
		}
		if !ValidUTF8(key) {
			return nil, p.syntaxError(keyStart, "invalid UTF-8 sequence in object key")
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		child, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		object.objVal[key] = child

		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.syntaxError(p.pos, "expected ',' or '}' in object")
		case c == '}':
			p.pos++
			return object, nil
		case c == ',':
			p.pos++
		default:
			return nil, p.syntaxError(p.pos, "expected ',' or '}' in object")
		}
	}
}
