package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Powers is the triangle T(n,k) = k^(n-k), with 0^0 = 1.
//
// [0] 1
// [1] 0, 1
// [2] 0, 1, 1
// [3] 0, 1, 2, 1
// [4] 0, 1, 4, 3, 1
var Powers = tabl.New("Powers", func(n int) tabl.Row {
	row := make(tabl.Row, n+1)
	for k := 0; k <= n; k++ {
		row[k] = new(big.Int).Exp(bi(int64(k)), bi(int64(n-k)), nil)
	}
	return row
}, "A004248", "A009998", "A051129")
