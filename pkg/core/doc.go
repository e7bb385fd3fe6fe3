// Package core provides a small, stable facade over Leakwarden's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so chat clients, bots and other tools can depend on a stable import
// path without exposing internal implementation packages.
//
// Example:
//
//	a, err := core.NewAnalyzer(core.Config{})
//	if err != nil { /* handle */ }
//	rep := a.Analyze("My card is 4532-0151-1283-0366")
//	_ = core.MarshalReport(os.Stdout, rep)
package core
