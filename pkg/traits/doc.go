// Package traits defines the fixed pool of elementary transformations
// that turn an integer triangle into a flat sequence, and the protocol
// for applying every registered trait to a table and its base transforms.
//
// A trait is either row-based, consuming a row generator directly, or
// table-based, consuming a materialized table because it needs cross-row
// information (columns, diagonals, inversion, linear transforms). The
// distinction is fixed at registration, not detected per call.
//
// The registry is built once and never mutated; it is safe for
// concurrent readers.
package traits
