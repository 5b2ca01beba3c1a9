// Package main is the entry point for the inkstone CLI.
package main

import "github.com/inkstone-editor/inkstone/internal/cli"

func main() {
	cli.Execute()
}
