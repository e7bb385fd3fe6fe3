// Package leakwarden provides the command-line interface for the Leakwarden
// tool. It configures subcommands (scan, patterns, baseline, history), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/leakwarden/leakwarden/cmd/leakwarden"
//	func main() { leakwarden.Execute() }
package leakwarden
