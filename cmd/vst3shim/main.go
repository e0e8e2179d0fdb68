package main

import (
	"os"

	"github.com/justyntemme/vst3shim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
