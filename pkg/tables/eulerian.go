package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Eulerian holds the Eulerian numbers: T(n,k) counts permutations of n
// elements with exactly k descents,
// T(n,k) = (k+1) T(n-1,k) + (n-k) T(n-1,k-1).
//
// [0] 1
// [1] 1, 0
// [2] 1, 1, 0
// [3] 1, 4, 1, 0
// [4] 1, 11, 11, 1, 0
var Eulerian = tabl.New("Eulerian", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		for k := 0; k <= m; k++ {
			v := new(big.Int)
			if k < m {
				v.Mul(bi(int64(k+1)), row[k])
			}
			if k > 0 && k-1 < m {
				v.Add(v, new(big.Int).Mul(bi(int64(m-k)), row[k-1]))
			}
			next[k] = v
		}
		row = next
	}
	return row
}, "A173018")
