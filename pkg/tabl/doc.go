// Package tabl provides the algebraic core for working with integer
// triangles: lower-triangular arrays of arbitrary-precision integers,
// zero-based, where row n has exactly n+1 entries.
//
// A Table wraps a pure RowGen (row generator) with a name and caches
// generated rows, so repeated access is cheap and reproducible. Derived
// forms (reversed, alternating, offset subtriangles) are Tables again;
// the exact lower-triangular matrix inverse is available where every
// division is integer-exact.
//
// All values are *big.Int and treated as read-only once produced.
// Mutating a returned row or entry breaks the purity contract that row
// caching and fingerprinting rely on.
package tabl
