package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// LucasInv is an integer version of the matrix inverse of the Lucas
// triangle: T(n,k) = -Inv(n,k) * (-2)^(n-k+1).
//
// [0] 1
// [1] 1, 1
// [2] 1, 3, 1
// [3] 1, 7, 5, 1
// [4] 1, 15, 17, 7, 1
var LucasInv = tabl.New("LucasInv", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		r := make(tabl.Row, m+1)
		r[0] = bi(1)
		copy(r[1:], row)
		for k := 1; k < m; k++ {
			v := new(big.Int).Lsh(r[k+1], 1)
			v.Add(v, r[k])
			r[k] = v
		}
		row = r
	}
	return row
}, "A112857")
