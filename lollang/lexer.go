package lollang

import (
	"strings"
	"unicode"
)

// Lexer splits source text into lexemes: the whitespace-and-comment
// pass that runs before tokenizing. String literals survive as single
// lexemes, commas become virtual newlines, soft line breaks (… or ...)
// glue physical lines together, and BTW / OBTW…TLDR comments vanish.
type Lexer struct {
	source   *Source
	reader   *strings.Reader
	line     int
	prevLine int
}

func NewLexer(source *Source) *Lexer {
	return &Lexer{
		source: source,
		reader: strings.NewReader(source.Content),
		line:   1,
	}
}

func (l *Lexer) readRune() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	l.prevLine = l.line
	if r == '\n' {
		l.line++
	}
	return r, true
}

func (l *Lexer) unreadRune() {
	l.reader.UnreadRune()
	l.line = l.prevLine
}

// Lex scans the whole source. The returned list always ends with the
// end-of-input lexeme.
func (l *Lexer) Lex() LexemeList {
	var lexemes LexemeList

	emit := func(image string, line int) {
		lexemes = append(lexemes, NewLexeme(image, l.source.Name, line))
	}

	for {
		r, ok := l.readRune()
		if !ok {
			break
		}

		switch {
		case r == '\n':
			emit(newlineImage, l.prevLine)

		case r == ',':
			emit(newlineImage, l.line)

		case r == '!':
			emit("!", l.line)

		case unicode.IsSpace(r):

		case r == '"':
			line := l.line
			emit(l.scanString(), line)

		default:
			l.unreadRune()
			line := l.line
			word := l.scanWord()
			switch word {
			case "BTW":
				l.skipLine()
			case "OBTW":
				l.skipBlockComment()
			case "…", "...":
				l.skipContinuation()
			default:
				emit(word, line)
			}
		}
	}

	lexemes = append(lexemes, EOFLexeme(l.source.Name, l.line))
	return lexemes
}

// scanString gathers a string literal, opening quote already consumed.
// The image keeps the raw text including escape sequences; an escaped
// quote (:") does not terminate. Unterminated literals end at the line
// break and stay classifiable by the tokenizer's lenient string rule.
func (l *Lexer) scanString() string {
	var buf strings.Builder
	buf.WriteByte('"')
	for {
		r, ok := l.readRune()
		if !ok {
			return buf.String()
		}
		if r == '\n' {
			l.unreadRune()
			return buf.String()
		}
		buf.WriteRune(r)
		switch r {
		case '"':
			return buf.String()
		case ':':
			next, ok := l.readRune()
			if !ok {
				return buf.String()
			}
			buf.WriteRune(next)
		}
	}
}

func (l *Lexer) scanWord() string {
	var buf strings.Builder
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if unicode.IsSpace(r) || r == ',' || r == '!' || r == '"' {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// skipLine discards the rest of the line, leaving the newline itself
// for the main loop.
func (l *Lexer) skipLine() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if r == '\n' {
			l.unreadRune()
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			continue
		}
		l.unreadRune()
		word := l.scanWord()
		if word == "" {
			l.readRune()
			continue
		}
		if word == "TLDR" {
			return
		}
	}
}

// skipContinuation swallows trailing spaces and the one line break a
// soft-break marker joins over.
func (l *Lexer) skipContinuation() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if r == '\n' {
			return
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return
		}
	}
}
