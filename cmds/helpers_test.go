package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("foo")
	b := Var[string]("bar")
	GlobalExecutor.MustExecute([]string{
		"foo", "42",
		"bar", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestVarReset(t *testing.T) {
	v := Var[string]("TestVarReset")
	GlobalExecutor.MustExecute([]string{
		"TestVarReset", "x",
		"TestVarReset.",
	})
	if *v != "" {
		t.Fatalf("got %q", *v)
	}
}
