// Package main is the entry point for the shopcost CLI.
package main

import (
	"os"

	"shopcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
