package lollang

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLiteral marks a lexeme that partially matches a
	// literal grammar but breaks one of its rules, such as an integer
	// outside the representable range.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrUnrecognizedLexeme marks a lexeme matching neither a keyword
	// phrase nor any literal grammar.
	ErrUnrecognizedLexeme = errors.New("unrecognized lexeme")

	// ErrKeywordTable marks an inconsistent keyword table: a missing
	// phrase or two distinct types sharing one. Never user-triggerable.
	ErrKeywordTable = errors.New("inconsistent keyword table")
)

// LexemeError attaches the provenance of the offending lexeme to a
// tokenize error, for the error-reporting sink.
type LexemeError struct {
	Err   error
	FName string
	Line  int
}

func (e *LexemeError) Error() string {
	if e.FName == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s:%d", e.Err.Error(), e.FName, e.Line)
}

func (e *LexemeError) Unwrap() error {
	return e.Err
}

// WithLexeme wraps err with the lexeme's file and line. Already-wrapped
// errors pass through unchanged.
func WithLexeme(err error, lexeme *Lexeme) error {
	if err == nil {
		return nil
	}
	var lexErr *LexemeError
	if errors.As(err, &lexErr) {
		return err
	}
	return &LexemeError{
		Err:   err,
		FName: lexeme.FName,
		Line:  lexeme.Line,
	}
}
