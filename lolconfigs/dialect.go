package lolconfigs

import (
	"fmt"
	"strings"

	"github.com/lolgo-lang/lolgo/cmds"
	"github.com/lolgo-lang/lolgo/configs"
	"github.com/lolgo-lang/lolgo/lollang"
	"github.com/lolgo-lang/lolgo/logs"
)

// Dialect maps canonical keyword phrases to localized spellings. An
// empty dialect is the canonical language.
type Dialect map[string]string

var keywordFlags = cmds.Collect[string]("-keyword")

func (Module) Dialect(
	loader configs.Loader,
) Dialect {
	dialect := Dialect(configs.First[map[string]string](loader, "keywords"))

	// flags override config, entry by entry
	for _, pair := range *keywordFlags {
		canonical, localized, ok := strings.Cut(pair, "=")
		if !ok {
			panic(fmt.Errorf("bad -keyword %q, want CANONICAL=LOCALIZED", pair))
		}
		if dialect == nil {
			dialect = make(Dialect)
		}
		dialect[canonical] = localized
	}

	return dialect
}

// Keywords builds the keyword table for the configured dialect. A
// dialect that breaks table consistency is a config defect and fatal.
func (Module) Keywords(
	dialect Dialect,
	logger logs.Logger,
) *lollang.Keywords {
	if len(dialect) == 0 {
		return lollang.DefaultKeywords()
	}
	keywords, err := lollang.NewKeywords(dialect)
	if err != nil {
		panic(err)
	}
	logger.Info("dialect keywords",
		"overrides", len(dialect),
	)
	return keywords
}
