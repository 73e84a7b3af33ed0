package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/quirl/bfvm"
	"github.com/reusee/quirl/debugs"
	"github.com/reusee/quirl/quirlconfigs"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs quirlconfigs.Module
	Debugs  debugs.Module
}
