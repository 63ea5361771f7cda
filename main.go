package main

import (
	"os"

	"github.com/planwise/discovery/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
