package main

import (
	"os"

	"github.com/lc-soft/lcui-release/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
