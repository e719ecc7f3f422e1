package lollang

import (
	"fmt"
	"strings"
	"sync"
)

// canonicalPhrases binds each TokenType to its canonical surface
// phrase. Literal and structural types hold the empty phrase and never
// participate in matching. The array is sized by the enumeration, so a
// new TokenType without a table entry fails to compile or is caught by
// the startup consistency check.
var canonicalPhrases = [tokenTypeEnd]string{
	TokenInteger:    "",
	TokenDecimal:    "",
	TokenString:     "",
	TokenIdentifier: "",
	TokenBoolean:    "",
	TokenIt:         "IT",
	TokenItzLiekA:   "ITZ LIEK A",
	TokenNoob:       "NOOB",
	TokenNumbr:      "NUMBR",
	TokenNumbar:     "NUMBAR",
	TokenTroof:      "TROOF",
	TokenYarn:       "YARN",
	TokenBukkit:     "BUKKIT",
	TokenEOF:        "",
	TokenNewline:    "",
	TokenHai:        "HAI",
	TokenKthxbye:    "KTHXBYE",
	TokenHasA:       "HAS A",
	TokenHasAn:      "HAS AN",
	TokenItzA:       "ITZ A",
	TokenItz:        "ITZ",
	TokenRNoob:      "R NOOB",
	TokenR:          "R",
	TokenAnYr:       "AN YR",
	TokenAn:         "AN",
	TokenSumOf:      "SUM OF",
	TokenDiffOf:     "DIFF OF",
	TokenProduktOf:  "PRODUKT OF",
	TokenQuoshuntOf: "QUOSHUNT OF",
	TokenModOf:      "MOD OF",
	TokenBiggrOf:    "BIGGR OF",
	TokenSmallrOf:   "SMALLR OF",
	TokenBothOf:     "BOTH OF",
	TokenEitherOf:   "EITHER OF",
	TokenWonOf:      "WON OF",
	TokenNot:        "NOT",
	TokenMkay:       "MKAY",
	TokenAllOf:      "ALL OF",
	TokenAnyOf:      "ANY OF",
	TokenBothSaem:   "BOTH SAEM",
	TokenDiffrint:   "DIFFRINT",
	TokenMaek:       "MAEK",
	TokenA:          "A",
	TokenIsNowA:     "IS NOW A",
	TokenVisible:    "VISIBLE",
	TokenInvisible:  "INVISIBLE",
	TokenSmoosh:     "SMOOSH",
	TokenBang:       "!",
	TokenGimmeh:     "GIMMEH",
	TokenORly:       "O RLY?",
	TokenYaRly:      "YA RLY",
	TokenMebbe:      "MEBBE",
	TokenNoWai:      "NO WAI",
	TokenOic:        "OIC",
	TokenWtf:        "WTF?",
	TokenOmg:        "OMG",
	TokenOmgWtf:     "OMGWTF",
	TokenGtfo:       "GTFO",
	TokenImInYr:     "IM IN YR",
	TokenUppin:      "UPPIN",
	TokenNerfin:     "NERFIN",
	TokenYr:         "YR",
	TokenTil:        "TIL",
	TokenWile:       "WILE",
	TokenImOuttaYr:  "IM OUTTA YR",
	TokenHowIz:      "HOW IZ",
	TokenIz:         "IZ",
	TokenIfUSaySo:   "IF U SAY SO",
	TokenFoundYr:    "FOUND YR",
	TokenSrs:        "SRS",
	TokenApostropheZ: "'Z",
	TokenOHaiIm:     "O HAI IM",
	TokenImLiek:     "IM LIEK",
	TokenKthx:       "KTHX",
}

// Boolean literal surface forms. They are matched like one-word keyword
// phrases but both bind to TokenBoolean, so they live beside the
// one-phrase-per-type table.
const (
	canonicalTrue  = "WIN"
	canonicalFalse = "FAIL"
)

// Keywords is an immutable keyword table: the concrete surface grammar
// of the language. Built once, then safe for concurrent reads.
type Keywords struct {
	phrases  [tokenTypeEnd][]string
	booleans map[string]bool
	maxWords int
}

// NewKeywords builds a keyword table from the canonical phrases, with
// optional dialect overrides keyed by canonical phrase (including the
// boolean words WIN and FAIL). The table is checked for consistency:
// every keyword type keeps exactly one non-empty phrase and no two
// types share a phrase.
func NewKeywords(overrides map[string]string) (*Keywords, error) {
	translate := func(phrase string) string {
		if phrase == "" {
			return ""
		}
		if localized, ok := overrides[phrase]; ok {
			return localized
		}
		return phrase
	}

	keywords := &Keywords{
		booleans: map[string]bool{
			translate(canonicalTrue):  true,
			translate(canonicalFalse): false,
		},
	}

	seen := make(map[string]TokenType)
	for t := TokenType(0); t < tokenTypeEnd; t++ {
		phrase := translate(canonicalPhrases[t])
		if phrase == "" {
			if canonicalPhrases[t] != "" {
				return nil, fmt.Errorf("%w: empty phrase for %s", ErrKeywordTable, canonicalPhrases[t])
			}
			continue
		}
		if prev, ok := seen[phrase]; ok {
			return nil, fmt.Errorf("%w: %q bound to both %s and %s", ErrKeywordTable, phrase, prev, t)
		}
		seen[phrase] = t

		words := strings.Fields(phrase)
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: blank phrase for %s", ErrKeywordTable, canonicalPhrases[t])
		}
		keywords.phrases[t] = words
		if len(words) > keywords.maxWords {
			keywords.maxWords = len(words)
		}
	}

	if len(keywords.booleans) != 2 {
		return nil, fmt.Errorf("%w: boolean words collide", ErrKeywordTable)
	}
	for word := range keywords.booleans {
		if word == "" {
			return nil, fmt.Errorf("%w: empty boolean word", ErrKeywordTable)
		}
		if prev, ok := seen[word]; ok {
			return nil, fmt.Errorf("%w: %q bound to both %s and %s", ErrKeywordTable, word, prev, TokenBoolean)
		}
	}

	return keywords, nil
}

var defaultKeywords = sync.OnceValue(func() *Keywords {
	keywords, err := NewKeywords(nil)
	if err != nil {
		panic(err)
	}
	return keywords
})

// DefaultKeywords returns the canonical table. It is built on first use
// and shared; the consistency check doubles as a startup assertion.
func DefaultKeywords() *Keywords {
	return defaultKeywords()
}

// Phrase returns the surface phrase bound to t, or "" for literal and
// structural types.
func (k *Keywords) Phrase(t TokenType) string {
	if t >= tokenTypeEnd {
		return ""
	}
	return strings.Join(k.phrases[t], " ")
}

// BooleanValue resolves a boolean literal word.
func (k *Keywords) BooleanValue(word string) (bool, bool) {
	v, ok := k.booleans[word]
	return v, ok
}

// Match finds the longest keyword phrase whose words equal, one lexeme
// each, the lexemes starting at index start. Comparison is
// case-sensitive. consumed is 0 when no phrase matches. Two distinct
// phrases matching at the same maximal length means the table is
// corrupt and is reported as ErrKeywordTable.
func (k *Keywords) Match(lexemes LexemeList, start int) (matched TokenType, consumed int, err error) {
	tryMatch := func(t TokenType, words []string) error {
		if len(words) < consumed {
			return nil
		}
		if start+len(words) > len(lexemes) {
			return nil
		}
		for i, word := range words {
			if lexemes[start+i].Image != word {
				return nil
			}
		}
		if len(words) == consumed {
			return WithLexeme(
				fmt.Errorf("%w: %s and %s match the same lexemes", ErrKeywordTable, matched, t),
				lexemes[start],
			)
		}
		matched = t
		consumed = len(words)
		return nil
	}

	for t := TokenType(0); t < tokenTypeEnd; t++ {
		if len(k.phrases[t]) == 0 {
			continue
		}
		if err := tryMatch(t, k.phrases[t]); err != nil {
			return 0, 0, err
		}
	}

	if start < len(lexemes) {
		if _, ok := k.booleans[lexemes[start].Image]; ok {
			if err := tryMatch(TokenBoolean, []string{lexemes[start].Image}); err != nil {
				return 0, 0, err
			}
		}
	}

	return matched, consumed, nil
}
