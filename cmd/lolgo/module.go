package main

import (
	"github.com/lolgo-lang/lolgo/debugs"
	"github.com/lolgo-lang/lolgo/lolconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs lolconfigs.Module
	Debugs  debugs.Module
}
