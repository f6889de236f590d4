package main

import (
	"os"

	"github.com/ckscontracting/demo-request/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
