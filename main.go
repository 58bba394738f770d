package main

import (
	"os"

	"github.com/mwerner/chakratest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
