package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lolgo-lang/lolgo/cmds"
	"github.com/lolgo-lang/lolgo/lollang"
	"golang.org/x/term"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, take it literally
			files = append(files, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}).Desc("add matching source files"))
}

// collectSources reads the -file arguments, falling back to stdin when
// none are given and stdin is not a terminal. Non-text files are
// skipped rather than fed to the lexer.
func collectSources() (sources []*lollang.Source, skipped []string) {
	for _, path := range files {
		content, err := os.ReadFile(path)
		ce(err)

		mtype := mimetype.Detect(content)
		isText := false
		for t := mtype; t != nil; t = t.Parent() {
			if t.Is("text/plain") {
				isText = true
				break
			}
		}
		if !isText {
			skipped = append(skipped, path)
			continue
		}

		sources = append(sources, lollang.NewSource(path, string(content)))
	}

	if len(sources) == 0 && len(skipped) == 0 &&
		!term.IsTerminal(int(os.Stdin.Fd())) {
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		if len(content) > 0 {
			sources = append(sources, lollang.NewSource("<stdin>", string(content)))
		}
	}

	return
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
