package lollang

import (
	"fmt"
	"strings"
)

// Tokenize converts a lexeme stream into a token list terminated by
// exactly one TokenEOF. It is a single sequential pass: at each cursor
// position the keyword matcher runs first, then the literal classifiers
// in priority order (string, integer, decimal, identifier). The first
// unrecognized or malformed lexeme aborts the call with its provenance
// attached; on error the returned list is nil.
func Tokenize(lexemes LexemeList, keywords *Keywords) (TokenList, error) {
	var tokens TokenList

	emit := func(t TokenType, image string, value any, lexeme *Lexeme) {
		tokens = append(tokens, &Token{
			Type:  t,
			Value: value,
			Image: image,
			FName: lexeme.FName,
			Line:  lexeme.Line,
		})
	}

	cursor := 0
	for cursor < len(lexemes) {
		lexeme := lexemes[cursor]

		if lexeme.IsEOF() {
			emit(TokenEOF, lexeme.Image, nil, lexeme)
			return tokens, nil
		}

		if lexeme.IsNewline() {
			emit(TokenNewline, lexeme.Image, nil, lexeme)
			cursor++
			continue
		}

		matched, consumed, err := keywords.Match(lexemes, cursor)
		if err != nil {
			return nil, err
		}
		if consumed > 0 {
			var value any
			if matched == TokenBoolean {
				value, _ = keywords.BooleanValue(lexeme.Image)
			}
			emit(matched, joinImages(lexemes[cursor:cursor+consumed]), value, lexeme)
			cursor += consumed
			continue
		}

		switch image := lexeme.Image; {
		case IsString(image):
			emit(TokenString, image, nil, lexeme)
		case IsInteger(image):
			value, err := ParseInteger(image)
			if err != nil {
				return nil, WithLexeme(err, lexeme)
			}
			emit(TokenInteger, image, value, lexeme)
		case IsDecimal(image):
			value, err := ParseDecimal(image)
			if err != nil {
				return nil, WithLexeme(err, lexeme)
			}
			emit(TokenDecimal, image, value, lexeme)
		case IsIdentifier(image):
			emit(TokenIdentifier, image, nil, lexeme)
		default:
			return nil, WithLexeme(
				fmt.Errorf("%w: %q", ErrUnrecognizedLexeme, image),
				lexeme,
			)
		}
		cursor++
	}

	// The stream carried no end-of-input marker; terminate anyway.
	last := EOFLexeme("", 0)
	if len(lexemes) > 0 {
		tail := lexemes[len(lexemes)-1]
		last = EOFLexeme(tail.FName, tail.Line)
	}
	emit(TokenEOF, last.Image, nil, last)
	return tokens, nil
}

// joinImages reconstructs the source span of a multi-lexeme keyword.
// The lexer collapses inter-word whitespace, so words rejoin with a
// single space.
func joinImages(lexemes LexemeList) string {
	if len(lexemes) == 1 {
		return lexemes[0].Image
	}
	images := make([]string, len(lexemes))
	for i, lexeme := range lexemes {
		images[i] = lexeme.Image
	}
	return strings.Join(images, " ")
}
