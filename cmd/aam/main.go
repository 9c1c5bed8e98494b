package main

import (
	"os"

	"github.com/aamhq/aam-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
