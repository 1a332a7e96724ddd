package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Fubini counts ordered set partitions of an n-set into k blocks,
// T(n,k) = k! * Stirling2(n,k).
//
// [0] 1
// [1] 0, 1
// [2] 0, 1, 2
// [3] 0, 1, 6, 6
// [4] 0, 1, 14, 36, 24
var Fubini = tabl.New("Fubini", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(0)
		for k := 1; k <= m; k++ {
			v := new(big.Int).Set(row[k-1])
			if k < m {
				v.Add(v, row[k])
			}
			next[k] = v.Mul(v, bi(int64(k)))
		}
		row = next
	}
	return row
}, "A131689")
