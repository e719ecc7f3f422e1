package lolconfigs

import (
	"github.com/lolgo-lang/lolgo/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
