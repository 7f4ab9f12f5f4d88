package main

import (
	"github.com/katalvlaran/vesatiming/internal/app"
	"github.com/katalvlaran/vesatiming/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
