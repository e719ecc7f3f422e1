package lollang

import (
	"errors"
	"testing"
)

func TestTokenizeProgram(t *testing.T) {
	// scenario: HAI <newline> KTHXBYE
	tokens, err := Tokenize(lexemesOf("HAI", "\n", "KTHXBYE"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}

	want := []TokenType{TokenHai, TokenNewline, TokenKthxbye, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens", len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestTokenizeInteger(t *testing.T) {
	tokens, err := Tokenize(lexemesOf("42"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0].Type != TokenInteger {
		t.Fatalf("got %v", tokens)
	}
	if value, ok := tokens[0].Int(); !ok || value != 42 {
		t.Fatalf("got %v %v", value, ok)
	}
	if tokens[0].Image != "42" {
		t.Fatalf("got %q", tokens[0].Image)
	}
}

func TestTokenizeDecimal(t *testing.T) {
	tokens, err := Tokenize(lexemesOf("3.14"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0].Type != TokenDecimal {
		t.Fatalf("got %v", tokens)
	}
	if value, ok := tokens[0].Decimal(); !ok || value != 3.14 {
		t.Fatalf("got %v %v", value, ok)
	}
}

func TestTokenizeCompoundKeyword(t *testing.T) {
	// ITZ alone is one keyword, ITZ A is another; the two-lexeme form
	// must win and consume both lexemes
	tokens, err := Tokenize(lexemesOf("ITZ", "A"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if tokens[0].Type != TokenItzA {
		t.Fatalf("got %v", tokens[0].Type)
	}
	if tokens[0].Image != "ITZ A" {
		t.Fatalf("got %q", tokens[0].Image)
	}
}

func TestTokenizeUnrecognized(t *testing.T) {
	tokens, err := Tokenize(lexemesOf("HAI", "\n", "@@@"), DefaultKeywords())
	if !errors.Is(err, ErrUnrecognizedLexeme) {
		t.Fatalf("got %v", err)
	}
	if tokens != nil {
		t.Fatalf("partial list not released: %v", tokens)
	}

	var lexErr *LexemeError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T", err)
	}
	if lexErr.FName != "test.lol" || lexErr.Line != 2 {
		t.Fatalf("got %s:%d", lexErr.FName, lexErr.Line)
	}
}

func TestTokenizeEmptyStream(t *testing.T) {
	for _, lexemes := range []LexemeList{
		nil,
		{EOFLexeme("test.lol", 1)},
	} {
		tokens, err := Tokenize(lexemes, DefaultKeywords())
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 1 || tokens[0].Type != TokenEOF {
			t.Fatalf("got %v", tokens)
		}
	}
}

func TestTokenizeEOFIsLast(t *testing.T) {
	tests := [][]string{
		{"HAI", "\n", "KTHXBYE"},
		{"42", "3.14", `"yarn"`, "x"},
		{"SUM", "OF", "1", "AN", "2"},
		{},
	}
	for _, images := range tests {
		tokens, err := Tokenize(lexemesOf(images...), DefaultKeywords())
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) == 0 {
			t.Fatal("no tokens")
		}
		for i, token := range tokens {
			isLast := i == len(tokens)-1
			if (token.Type == TokenEOF) != isLast {
				t.Fatalf("%v: EOF misplaced at %d of %d", images, i, len(tokens))
			}
		}
	}
}

func TestTokenizeImageRoundTrip(t *testing.T) {
	images := []string{"I", "HAS", "A", "x", "ITZ", "SUM", "OF", "1", "AN", "2"}
	tokens, err := Tokenize(lexemesOf(images...), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}

	// re-joining every token image except the EOF's restores the
	// lexeme sequence
	var rebuilt []string
	for _, token := range tokens[:len(tokens)-1] {
		rebuilt = append(rebuilt, token.Image)
	}
	want := []string{"I", "HAS A", "x", "ITZ", "SUM OF", "1", "AN", "2"}
	if len(rebuilt) != len(want) {
		t.Fatalf("got %v", rebuilt)
	}
	for i := range want {
		if rebuilt[i] != want[i] {
			t.Errorf("image %d: got %q, want %q", i, rebuilt[i], want[i])
		}
	}
}

func TestTokenizeBooleans(t *testing.T) {
	tokens, err := Tokenize(lexemesOf("WIN", "FAIL"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Type != TokenBoolean || tokens[1].Type != TokenBoolean {
		t.Fatalf("got %v %v", tokens[0].Type, tokens[1].Type)
	}
	if v, ok := tokens[0].Bool(); !ok || v != true {
		t.Fatalf("got %v %v", v, ok)
	}
	if v, ok := tokens[1].Bool(); !ok || v != false {
		t.Fatalf("got %v %v", v, ok)
	}
}

func TestTokenizeStringsLenient(t *testing.T) {
	tests := []string{
		`"hello"`,
		`""`,
		`"`,
		`"unterminated`,
		`"with :" escaped quote"`,
	}
	for _, image := range tests {
		tokens, err := Tokenize(lexemesOf(image), DefaultKeywords())
		if err != nil {
			t.Fatal(err)
		}
		if tokens[0].Type != TokenString {
			t.Errorf("%q: got %v", image, tokens[0].Type)
		}
		if tokens[0].Image != image {
			t.Errorf("%q: image %q", image, tokens[0].Image)
		}
	}
}

func TestTokenizeIntegerOverflow(t *testing.T) {
	_, err := Tokenize(lexemesOf("9223372036854775808"), DefaultKeywords())
	if !errors.Is(err, ErrMalformedLiteral) {
		t.Fatalf("got %v", err)
	}

	var lexErr *LexemeError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T", err)
	}
	if lexErr.Line != 1 {
		t.Fatalf("got line %d", lexErr.Line)
	}
}

func TestTokenizeProvenance(t *testing.T) {
	tokens, err := Tokenize(lexemesOf("HAI", "\n", "VISIBLE", `"x"`), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Line != 1 || tokens[0].FName != "test.lol" {
		t.Fatalf("got %s:%d", tokens[0].FName, tokens[0].Line)
	}
	if tokens[2].Line != 2 {
		t.Fatalf("got line %d", tokens[2].Line)
	}
}

func TestTokenizeIdentifierFallback(t *testing.T) {
	// keyword-shaped prefixes that fail to complete a phrase fall back
	// to identifiers one lexeme at a time
	tokens, err := Tokenize(lexemesOf("IM", "home"), DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Type != TokenIdentifier || tokens[0].Image != "IM" {
		t.Fatalf("got %v %q", tokens[0].Type, tokens[0].Image)
	}
	if tokens[1].Type != TokenIdentifier || tokens[1].Image != "home" {
		t.Fatalf("got %v %q", tokens[1].Type, tokens[1].Image)
	}
}

func TestTokenizeDialect(t *testing.T) {
	keywords, err := NewKeywords(map[string]string{
		"HAI":     "नमस्ते",
		"KTHXBYE": "अलविदा",
		"VISIBLE": "दिखाओ",
	})
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := Tokenize(
		lexemesOf("नमस्ते", "\n", "दिखाओ", `"x"`, "\n", "अलविदा"),
		keywords,
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TokenHai, TokenNewline,
		TokenVisible, TokenString, TokenNewline,
		TokenKthxbye, TokenEOF,
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Type, tt)
		}
	}
}
