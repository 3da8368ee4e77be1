package main

import (
	"os"

	"github.com/msto63/minilang/cmd/mlc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
