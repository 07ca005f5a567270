// main package for the rsort command-line tool
// Package main is the entry point for the rsort CLI.
package main

import "rsort.dev/pkg/rsort/cmd"

func main() {
	cmd.Execute()
}
