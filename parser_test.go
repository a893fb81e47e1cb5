package jsondom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	t.Run("Null", func(t *testing.T) {
		v, err := Parse("null")
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	})

	t.Run("True", func(t *testing.T) {
		v, err := Parse("true")
		require.NoError(t, err)
		b, err := v.BoolValue()
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("False", func(t *testing.T) {
		v, err := Parse("false")
		require.NoError(t, err)
		b, err := v.BoolValue()
		require.NoError(t, err)
		assert.False(t, b)
	})

	t.Run("LeadingAndTrailingWhitespace", func(t *testing.T) {
		v, err := Parse(" \t\r\n null \t\r\n ")
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	})
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-42", -42},
		{"3.14159", 3.14159},
		{"-0.5", -0.5},
		{"0.25", 0.25},
		{"1e3", 1000},
		{"1E3", 1000},
		{"1.5e2", 150},
		{"1e+2", 100},
		{"2e-2", 0.02},
		{"-1.25e-3", -0.00125},
		{"9007199254740991", 9007199254740991},
		{"1.7976931348623157e+308", 1.7976931348623157e+308},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := Parse(tc.input)
			require.NoError(t, err)
			n, err := v.NumberValue()
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestParseNumberGrammarViolations(t *testing.T) {
	inputs := []string{
		"-",      // sign with no digits
		"+1",     // leading plus is not JSON
		".5",     // missing integer part
		"1.",     // missing fraction digits
		"1.e3",   // missing fraction digits before exponent
		"1e",     // missing exponent digits
		"1e+",    // sign with no exponent digits
		"--1",    // double sign
		"[01]",   // leading zero followed by digits
		"[1.2.3]",
		"0x10",   // hex is not JSON (trailing characters after 0)
		"NaN",
		"Infinity",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			var de *Error
			require.True(t, errors.As(err, &de))
			assert.Contains(t, []Code{CodeParseError, CodeSyntaxError}, de.Code)
		})
	}
}

func TestParseStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", `""`, ""},
		{"Plain", `"hello"`, "hello"},
		{"InnerWhitespacePreserved", `"a b\tc  d"`, "a b\tc  d"},
		{"Escapes", `"line1\nline2\t\"quoted\""`, "line1\nline2\t\"quoted\""},
		{"Slash", `"a\/b"`, "a/b"},
		{"UnicodeEscape", `"A\u00e9\u4f60"`, "A\xc3\xa9\xe4\xbd\xa0"},
		{"SurrogatePair", `"\uD83D\uDE00"`, "\xf0\x9f\x98\x80"},
		{"LoneSurrogate", `"\uD800"`, "\xef\xbf\xbd"},
		{"RawMultiByte", "\"caf\xc3\xa9\"", "caf\xc3\xa9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.input)
			require.NoError(t, err)
			s, err := v.StringValue()
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)
			assert.True(t, ValidUTF8(s))
		})
	}
}

func TestParseStringErrors(t *testing.T) {
	inputs := []string{
		`"unterminated`,
		`"bad \x escape"`,
		`"\u12"`,
		`"\u12zz"`,
		`"trailing backslash\`,
		"\"overlong \xc0\x80\"", // invalid UTF-8 payload
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParseError)
		})
	}
}

func TestParseArrays(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v, err := Parse("[]")
		require.NoError(t, err)
		assert.True(t, v.IsArray())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("Flat", func(t *testing.T) {
		v, err := Parse(`[1, "two", true, null]`)
		require.NoError(t, err)
		require.Equal(t, 4, v.Len())

		e0, _ := v.At(0)
		assert.True(t, e0.Equals(NewNumber(1)))
		e1, _ := v.At(1)
		assert.True(t, e1.Equals(mustString(t, "two")))
		e2, _ := v.At(2)
		assert.True(t, e2.Equals(NewBool(true)))
		e3, _ := v.At(3)
		assert.True(t, e3.IsNull())
	})

	t.Run("Nested", func(t *testing.T) {
		v, err := Parse(`[[1, 2], [3, [4]]]`)
		require.NoError(t, err)
		require.Equal(t, 2, v.Len())
		inner, err := v.At(1)
		require.NoError(t, err)
		deep, err := inner.At(1)
		require.NoError(t, err)
		first, err := deep.At(0)
		require.NoError(t, err)
		assert.True(t, first.Equals(NewNumber(4)))
	})
}

func TestParseObjects(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v, err := Parse("{}")
		require.NoError(t, err)
		assert.True(t, v.IsObject())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("LiteralScenario", func(t *testing.T) {
		v, err := Parse(`{"name": "John", "age": 30, "active": true}`)
		require.NoError(t, err)
		require.Equal(t, 3, v.Len())

		name, ok := v.Get("name")
		require.True(t, ok)
		assert.True(t, name.Equals(mustString(t, "John")))

		age, ok := v.Get("age")
		require.True(t, ok)
		assert.True(t, age.Equals(NewNumber(30.0)))

		active, ok := v.Get("active")
		require.True(t, ok)
		assert.True(t, active.Equals(NewBool(true)))
	})

	t.Run("DuplicateKeysReplace", func(t *testing.T) {
		v, err := Parse(`{"k": 1, "k": 2}`)
		require.NoError(t, err)
		assert.Equal(t, 1, v.Len())
		child, ok := v.Get("k")
		require.True(t, ok)
		assert.True(t, child.Equals(NewNumber(2)))
	})

	t.Run("Nested", func(t *testing.T) {
		v, err := Parse(`{"a": {"b": {"c": [1, {"d": null}]}}}`)
		require.NoError(t, err)
		a, ok := v.Get("a")
		require.True(t, ok)
		b, ok := a.Get("b")
		require.True(t, ok)
		c, ok := b.Get("c")
		require.True(t, ok)
		assert.Equal(t, 2, c.Len())
	})
}

func TestParseSyntaxRejection(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		"}",
		"[",
		"]",
		"{]",
		"[}",
		`{"invalid": json}`, // bare token is not a value start
		`{"a" 1}`,           // missing colon
		`{"a": 1,}`,         // trailing comma
		"[1, 2,]",           // trailing comma
		"[1 2]",             // missing comma
		`{"a": 1 "b": 2}`,   // missing comma
		"[,1]",
		`{,}`,
		"tru",
		"truE",
		"nul",
		"falze",
		`{1: "x"}`, // non-string key
		"'single'",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.Error(t, err)
			assert.Nil(t, v) // no partial tree on failure

			var de *Error
			require.True(t, errors.As(err, &de))
			assert.Contains(t, []Code{CodeParseError, CodeSyntaxError}, de.Code)
		})
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	inputs := []string{
		"123 abc",
		"{} {}",
		"[1] [2]", // leftover valid JSON still rejected
		`"a" "b"`,
		"null x",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntaxError)

			var de *Error
			require.True(t, errors.As(err, &de))
			assert.Contains(t, de.Message, "trailing characters")
		})
	}
}

func TestParseErrorOffsets(t *testing.T) {
	t.Run("TrailingGarbage", func(t *testing.T) {
		_, err := Parse("123 abc")
		var de *Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 4, de.Offset) // first byte of "abc"
	})

	t.Run("BadValueStart", func(t *testing.T) {
		_, err := Parse(`{"a": @}`)
		var de *Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 6, de.Offset)
	})

	t.Run("EndOfInput", func(t *testing.T) {
		_, err := Parse(`[1,`)
		var de *Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 3, de.Offset)
	})
}

func TestParseBytes(t *testing.T) {
	v, err := ParseBytes([]byte(`{"ok": true}`))
	require.NoError(t, err)
	ok, found := v.Get("ok")
	require.True(t, found)
	assert.True(t, ok.Equals(NewBool(true)))
}

func TestParseResult(t *testing.T) {
	good := ParseResult("[1, 2, 3]")
	require.True(t, good.IsOk())
	assert.Equal(t, 3, good.Value().Len())

	bad := ParseResult("[1, 2")
	assert.False(t, bad.IsOk())
	assert.Equal(t, CodeParseError, bad.Code())

	trailing := ParseResult("1 2")
	assert.Equal(t, CodeSyntaxError, trailing.Code())
}

func TestParseDeepNesting(t *testing.T) {
	// Recursion depth is bounded only by the goroutine stack; a few
	// thousand levels must parse.
	const depth = 5000
	input := strings.Repeat("[", depth) + strings.Repeat("]", depth)

	v, err := Parse(input)
	require.NoError(t, err)

	for i := 0; i < depth-1; i++ {
		require.Equal(t, 1, v.Len())
		v, err = v.At(0)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, v.Len())
}

func TestParseWhitespaceVariations(t *testing.T) {
	inputs := []string{
		`{"key":"value"}`,
		`{ "key" : "value" }`,
		"{\n\t\"key\": \"value\"\n}",
		"{\r\n  \"key\" :\r\n\t\"value\"}",
	}
	for _, input := range inputs {
		v, err := Parse(input)
		require.NoError(t, err)
		child, ok := v.Get("key")
		require.True(t, ok)
		assert.True(t, child.Equals(mustString(t, "value")))
	}
}
