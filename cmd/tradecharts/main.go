package main

import (
	"os"

	"github.com/rustyeddy/tradecharts/cmd/tradecharts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
