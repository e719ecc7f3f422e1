package lollang

// Lexeme is a minimal unit of source text produced by the lexer,
// carrying its file and line provenance. Lexemes are read-only to the
// tokenizer.
type Lexeme struct {
	Image string
	FName string
	Line  int
}

// Distinguished lexeme images. The lexer emits a newline lexeme per
// logical line break and a single end-of-input lexeme last.
const (
	newlineImage = "\n"
	eofImage     = ""
)

func NewLexeme(image string, fname string, line int) *Lexeme {
	return &Lexeme{
		Image: image,
		FName: fname,
		Line:  line,
	}
}

func NewlineLexeme(fname string, line int) *Lexeme {
	return NewLexeme(newlineImage, fname, line)
}

func EOFLexeme(fname string, line int) *Lexeme {
	return NewLexeme(eofImage, fname, line)
}

func (l *Lexeme) IsNewline() bool {
	return l.Image == newlineImage
}

func (l *Lexeme) IsEOF() bool {
	return l.Image == eofImage
}

// LexemeList is the ordered lexer output consumed by Tokenize.
type LexemeList []*Lexeme
