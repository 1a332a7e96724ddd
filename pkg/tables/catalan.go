package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Catalan is the ballot triangle: T(n,0) = 1, T(n,k) = T(n,k-1) +
// T(n-1,k) for k < n, and T(n,n) = T(n,n-1). The main diagonal gives the
// Catalan numbers.
//
// [0] 1
// [1] 1, 1
// [2] 1, 2, 2
// [3] 1, 3, 5, 5
// [4] 1, 4, 9, 14, 14
var Catalan = tabl.New("Catalan", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(1)
		for k := 1; k < m; k++ {
			next[k] = new(big.Int).Add(next[k-1], row[k])
		}
		next[m] = next[m-1]
		row = next
	}
	return row
}, "A009766")
