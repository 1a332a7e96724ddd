package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// DyckPathsInv is the unsigned matrix inverse of the DyckPaths
// triangle, T(n,k) = binomial(n+k, 2k).
//
// [0] 1
// [1] 1, 1
// [2] 1, 3, 1
// [3] 1, 6, 5, 1
// [4] 1, 10, 15, 7, 1
var DyckPathsInv = tabl.New("DyckPathsInv", func(n int) tabl.Row {
	if n == 0 {
		return tabl.RowOf(1)
	}
	q := tabl.RowOf(1)    // row m-2
	p := tabl.RowOf(1, 1) // row m-1
	for m := 2; m <= n; m++ {
		row := make(tabl.Row, m+1)
		row[0] = p[0]
		row[m] = bi(1)
		for k := 1; k < m; k++ {
			v := new(big.Int).Set(p[k-1])
			v.Add(v, p[k])
			v.Add(v, p[k])
			if k < len(q) {
				v.Sub(v, q[k])
			}
			row[k] = v
		}
		q, p = p, row
	}
	return p
}, "A085478", "A129818", "A123970")
