package lollang

import (
	"fmt"
	"strconv"
)

// TokenType identifies the kind of a token. Literal types carry an
// extracted value, structural types carry nothing, and every keyword
// type is bound to exactly one phrase in the keyword table.
type TokenType uint8

const (
	// literals
	TokenInteger TokenType = iota
	TokenDecimal
	TokenString
	TokenIdentifier
	TokenBoolean

	// keywords: types, values, declarations
	TokenIt
	TokenItzLiekA
	TokenNoob
	TokenNumbr
	TokenNumbar
	TokenTroof
	TokenYarn
	TokenBukkit

	// structural
	TokenEOF
	TokenNewline

	// keywords: program structure, assignment
	TokenHai
	TokenKthxbye
	TokenHasA
	TokenHasAn
	TokenItzA
	TokenItz
	TokenRNoob
	TokenR
	TokenAnYr
	TokenAn

	// keywords: arithmetic and comparison
	TokenSumOf
	TokenDiffOf
	TokenProduktOf
	TokenQuoshuntOf
	TokenModOf
	TokenBiggrOf
	TokenSmallrOf

	// keywords: logic
	TokenBothOf
	TokenEitherOf
	TokenWonOf
	TokenNot
	TokenMkay
	TokenAllOf
	TokenAnyOf
	TokenBothSaem
	TokenDiffrint

	// keywords: casts
	TokenMaek
	TokenA
	TokenIsNowA

	// keywords: I/O
	TokenVisible
	TokenInvisible
	TokenSmoosh
	TokenBang
	TokenGimmeh

	// keywords: conditionals and switches
	TokenORly
	TokenYaRly
	TokenMebbe
	TokenNoWai
	TokenOic
	TokenWtf
	TokenOmg
	TokenOmgWtf
	TokenGtfo

	// keywords: loops
	TokenImInYr
	TokenUppin
	TokenNerfin
	TokenYr
	TokenTil
	TokenWile
	TokenImOuttaYr

	// keywords: functions
	TokenHowIz
	TokenIz
	TokenIfUSaySo
	TokenFoundYr

	// keywords: indirection and arrays
	TokenSrs
	TokenApostropheZ
	TokenOHaiIm
	TokenImLiek
	TokenKthx

	// tokenTypeEnd sizes the keyword table and is never emitted.
	tokenTypeEnd
)

// String returns the canonical phrase for keyword types and a category
// name for literal and structural types.
func (t TokenType) String() string {
	switch t {
	case TokenInteger:
		return "INTEGER"
	case TokenDecimal:
		return "DECIMAL"
	case TokenString:
		return "STRING"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "NEWLINE"
	}
	if t < tokenTypeEnd {
		return canonicalPhrases[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token is one classified unit of the source, as handed to the parser.
// Value is set only for literal tokens: int64 for TokenInteger, float64
// for TokenDecimal, bool for TokenBoolean. Tokens are never mutated
// after creation.
type Token struct {
	Type  TokenType
	Value any
	Image string
	FName string
	Line  int
}

// Int returns the extracted integer value.
func (t *Token) Int() (int64, bool) {
	v, ok := t.Value.(int64)
	return v, ok
}

// Decimal returns the extracted decimal value.
func (t *Token) Decimal() (float64, bool) {
	v, ok := t.Value.(float64)
	return v, ok
}

// Bool returns the extracted boolean value.
func (t *Token) Bool() (bool, bool) {
	v, ok := t.Value.(bool)
	return v, ok
}

func (t *Token) String() string {
	switch t.Type {
	case TokenInteger, TokenDecimal, TokenBoolean:
		return fmt.Sprintf("%s(%v)", t.Type, t.Value)
	case TokenString, TokenIdentifier:
		return fmt.Sprintf("%s(%s)", t.Type, t.Image)
	}
	return t.Type.String()
}

// TokenList is the ordered output of a tokenize call. A complete list
// ends with exactly one TokenEOF token. The list is owned by its
// creator until handed to the parser.
type TokenList []*Token
