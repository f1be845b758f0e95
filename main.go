package main

import (
	"os"

	"github.com/npradeep/joule/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
