package main

import (
	"os"

	"github.com/msto63/chronal/cmd/chronal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
