package main

import (
	"os"

	"github.com/tobrecht/latchkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
