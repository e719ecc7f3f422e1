package lollang

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// Literal classifiers. Each is a pure predicate on a single lexeme's
// full text; partial matches do not count.

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// IsInteger reports whether text is an optional minus sign followed by
// one or more ASCII digits.
func IsInteger(text string) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	return isDigits(text)
}

// IsDecimal reports whether text is an optional minus sign, digits, a
// single point, then digits. Both sides of the point are mandatory.
func IsDecimal(text string) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	dot := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			if dot >= 0 {
				return false
			}
			dot = i
		}
	}
	if dot < 0 {
		return false
	}
	return isDigits(text[:dot]) && isDigits(text[dot+1:])
}

// IsString reports whether text is a string literal. A leading quote
// suffices: an unterminated literal still classifies as a string, with
// empty content.
func IsString(text string) bool {
	return len(text) > 0 && text[0] == '"'
}

// StringContent returns the text between the delimiters. Unterminated
// literals and the bare delimiter pair yield "".
func StringContent(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return ""
	}
	return text[1 : len(text)-1]
}

// IsIdentifier reports whether text is one or more letters, digits, or
// underscores, and not purely numeric. Keyword exclusion is implicit:
// the driver only reaches this classifier after keyword matching has
// failed.
func IsIdentifier(text string) bool {
	if text == "" {
		return false
	}
	hasLetter := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || r == '_':
			hasLetter = true
		case unicode.IsDigit(r):
		default:
			return false
		}
	}
	return hasLetter
}

// ParseInteger extracts the value of an integer literal. A value
// outside the 64-bit signed range is a malformed literal, never a
// silent wraparound.
func ParseInteger(text string) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, fmt.Errorf("%w: integer %q out of range", ErrMalformedLiteral, text)
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}
	return value, nil
}

// ParseDecimal extracts the value of a decimal literal with standard
// decimal semantics.
func ParseDecimal(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLiteral, text)
	}
	return value, nil
}
