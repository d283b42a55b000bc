package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taisp/debugs"
	"github.com/reusee/taisp/runs"
)

type Module struct {
	dscope.Module
	Runs   runs.Module
	Debugs debugs.Module
}
