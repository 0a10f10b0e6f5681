package main

import (
	"os"

	"github.com/craft-agent/craft/cmd/craft/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
