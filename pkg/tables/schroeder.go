package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// SchroederInv is the inverse companion of the Schroeder triangle.
//
// [0] 1
// [1] 0, 1
// [2] 0, 2, 1
// [3] 0, 2, 4, 1
// [4] 0, 2, 8, 6, 1
var SchroederInv = tabl.New("SchroederInv", func(n int) tabl.Row {
	if n == 0 {
		return tabl.RowOf(1)
	}
	arow := tabl.RowOf(1)   // row m-2, extended by 1 below
	row := tabl.RowOf(0, 1) // row m-1
	for m := 2; m <= n; m++ {
		a := append(arow[:len(arow):len(arow)], bi(1))
		next := make(tabl.Row, m+1)
		copy(next, row)
		next[m] = bi(1)
		for k := m - 1; k >= 1; k-- {
			v := new(big.Int).Set(next[k])
			v.Add(v, next[k-1])
			v.Add(v, a[k-1])
			next[k] = v
		}
		arow, row = row, next
	}
	return row
}, "A122542", "A035607", "A113413", "A119800", "A266213")
