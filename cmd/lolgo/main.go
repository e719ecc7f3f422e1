package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lolgo-lang/lolgo/cmds"
	"github.com/lolgo-lang/lolgo/configs"
	"github.com/lolgo-lang/lolgo/debugs"
	"github.com/lolgo-lang/lolgo/lollang"
	"github.com/lolgo-lang/lolgo/logs"
	"github.com/lolgo-lang/lolgo/modes"
	"github.com/lolgo-lang/lolgo/syncs"
	"github.com/lolgo-lang/lolgo/vars"
	"github.com/reusee/dscope"
)

var (
	dumpFlag    = cmds.Switch("-dump")
	inspectFlag = cmds.Switch("-inspect")
	jobsFlag    = cmds.Var[int]("-jobs")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		keywords *lollang.Keywords,
		inspect debugs.Inspect,
		loader configs.Loader,
	) {

		sources, skipped := collectSources()
		for _, path := range skipped {
			logger.Warn("not a text file, skipping",
				"path", path,
			)
		}
		if len(sources) == 0 {
			cmds.GlobalExecutor.PrintUsage()
			os.Exit(1)
		}

		jobs := vars.FirstNonZero(
			*jobsFlag,
			configs.First[int](loader, "jobs"),
			1,
		)
		if *inspectFlag {
			// the inspection repl owns the terminal
			jobs = 1
		}

		var stdout sync.Mutex
		var failed atomic.Bool
		semaphore := syncs.NewSemaphore(jobs)
		var wg sync.WaitGroup

		for _, source := range sources {
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore.Acquire()
				defer semaphore.Release()

				ctx := logs.WithSource(ctx, source.Name)

				lexemes := lollang.NewLexer(source).Lex()
				tokens, err := lollang.Tokenize(lexemes, keywords)
				if err != nil {
					logger.ErrorContext(ctx, "tokenize",
						"error", err,
					)
					failed.Store(true)
					return
				}
				logger.DebugContext(ctx, "tokenize",
					"tokens", len(tokens),
				)

				if *dumpFlag {
					stdout.Lock()
					fmt.Println(dumpTokens(source.Name, tokens))
					stdout.Unlock()
				}

				if *inspectFlag {
					inspect(ctx, source.Name, map[string]any{
						"tokens":  tokens,
						"lexemes": lexemes,
					})
				}
			}()
		}
		wg.Wait()

		if failed.Load() {
			os.Exit(1)
		}

	})

}

func dumpTokens(name string, tokens lollang.TokenList) string {
	var sb strings.Builder
	for _, token := range tokens {
		fmt.Fprintf(&sb, "%s:%d\t%s\n", name, token.Line, token)
	}
	return strings.TrimRight(sb.String(), "\n")
}
