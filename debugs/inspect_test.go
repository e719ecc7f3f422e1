package debugs

import (
	"testing"

	"github.com/lolgo-lang/lolgo/lollang"
	"github.com/reusee/dscope"
)

func TestInspect(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		inspect Inspect,
	) {
		tokens, err := lollang.Tokenize(
			lollang.NewLexer(lollang.NewSource("t.lol", "HAI 1.2\nKTHXBYE\n")).Lex(),
			lollang.DefaultKeywords(),
		)
		if err != nil {
			t.Fatal(err)
		}
		inspect(t.Context(), "test", map[string]any{
			"tokens": tokens,
		})
	})
}
