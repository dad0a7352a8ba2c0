package main

import (
	"os"

	"github.com/goto/spotlight/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
