package main

import (
	"os"

	"github.com/snlarchive/datesort/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
