package cmds

import "testing"

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
	}).Desc("FOO"))
	executor.PrintUsage()
}
