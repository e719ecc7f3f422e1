package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true

		names := append([]string{name}, command.Aliases...)
		line := strings.Repeat("  ", depth) + strings.Join(names, ", ")
		if command.Description != "" {
			line += "\n" + strings.Repeat("  ", depth+1) + command.Description
		}
		fmt.Fprintln(os.Stderr, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, depth+1)
		}
	}
}
