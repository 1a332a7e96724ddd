package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Lah holds the unsigned Lah numbers: T(n,k) = C(n-1,k-1) n!/k!,
// via T(n,k) = T(n-1,k-1) + (n+k-1) T(n-1,k).
//
// [0] 1
// [1] 0, 1
// [2] 0, 2, 1
// [3] 0, 6, 6, 1
// [4] 0, 24, 36, 12, 1
var Lah = tabl.New("Lah", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(0)
		for k := 1; k <= m; k++ {
			v := new(big.Int).Set(row[k-1])
			if k < m {
				v.Add(v, new(big.Int).Mul(bi(int64(m+k-1)), row[k]))
			}
			next[k] = v
		}
		row = next
	}
	return row
}, "A271703")
