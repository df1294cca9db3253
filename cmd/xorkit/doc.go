// Package xorkit provides the command-line interface for the xorkit tool.
// It configures subcommands (xor, commands, audit, etc.), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/xorkit/xorkit/cmd/xorkit"
//	func main() { xorkit.Execute() }
package xorkit
