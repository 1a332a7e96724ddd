package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// MotzkinInv is the matrix inverse of the Motzkin triangle:
// T(n,k) = T(n-1,k-1) - T(n-2,k) - T(n-1,k) with T(n,n) = 1.
//
// [0] 1
// [1] -1, 1
// [2] 0, -2, 1
// [3] 1, 1, -3, 1
// [4] -1, 2, 3, -4, 1
var MotzkinInv = tabl.New("MotzkinInv", func(n int) tabl.Row {
	if n == 0 {
		return tabl.RowOf(1)
	}
	prev := tabl.RowOf(1)    // row m-2
	cur := tabl.RowOf(-1, 1) // row m-1
	for m := 2; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[m] = bi(1)
		for k := 0; k < m; k++ {
			v := new(big.Int)
			if k > 0 {
				v.Set(cur[k-1])
			}
			if k < len(prev) {
				v.Sub(v, prev[k])
			}
			v.Sub(v, cur[k])
			next[k] = v
		}
		prev, cur = cur, next
	}
	return cur
}, "A104562", "A101950", "A344566")
