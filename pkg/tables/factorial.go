package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// FallingFactorial counts permutations of n things taken k at a time,
// T(n,k) = n! / (n-k)!.
//
// [0] 1
// [1] 1, 1
// [2] 1, 2, 2
// [3] 1, 3, 6, 6
// [4] 1, 4, 12, 24, 24
var FallingFactorial = tabl.New("FallingFactorial", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(1)
		for k := 1; k <= m; k++ {
			next[k] = new(big.Int).Mul(bi(int64(m)), row[k-1])
		}
		row = next
	}
	return row
}, "A008279", "A068424", "A094587")

// RisingFactorial is the triangle T(n,k) = n (n+1) ... (n+k-1), the
// k-term rising product starting at n, with T(n,0) = 1.
var RisingFactorial = tabl.New("RisingFactorial", func(n int) tabl.Row {
	row := make(tabl.Row, n+1)
	row[0] = bi(1)
	if n == 0 {
		return row
	}
	row[1] = bi(int64(n))
	for k := 1; k < n; k++ {
		row[k+1] = new(big.Int).Mul(row[k], bi(int64(n+k)))
	}
	return row
}, "A124320")
