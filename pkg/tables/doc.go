// Package tables ships the built-in corpus of integer triangles: one
// Table per classical combinatorial family, each defined by a pure row
// generator. The registry lists them in a fixed order for batch scans.
package tables
