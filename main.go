package main

import (
	"os"

	"github.com/penwyp/agelens/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
