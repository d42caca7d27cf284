package main

import (
	"os"

	"github.com/zentinel/docver/cmd"
)

func main() {
	if cmd.Execute() != nil {
		os.Exit(1)
	}
}
