package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor serves package-level command definitions; packages
// register their flags in init and mains call Execute once.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}
