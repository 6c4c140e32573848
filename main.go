// Package main is the entry point for the camodlib command-line program.
package main

import (
	"camodlib/cmd"
)

func main() {
	cmd.Execute()
}
