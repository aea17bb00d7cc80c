// Package main is the entry point for the covtrace CLI.
package main

import "gooze.dev/pkg/covtrace/cmd"

func main() {
	cmd.Execute()
}
