// Package core provides a small, stable facade over xorkit's internal engine
// for external integrations. It deliberately re-exports a narrow API surface
// so third-party tools can depend on a stable import path without reaching
// into internal implementation packages.
//
// Example:
//
//	out, err := core.Transform(data, key)
//	if err != nil { /* handle */ }
//	restored, _ := core.Transform(out, key)
package core
