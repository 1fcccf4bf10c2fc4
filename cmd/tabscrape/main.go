// Package main is the entry point for the tabscrape CLI.
package main

import (
	"os"

	"github.com/tabscrape/tabscrape/cmd/tabscrape/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
