package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func binomialRow(n int) tabl.Row {
	row := make(tabl.Row, n+1)
	row[0] = bi(1)
	for k := 1; k <= n; k++ {
		v := new(big.Int).Mul(row[k-1], bi(int64(n-k+1)))
		row[k] = v.Quo(v, bi(int64(k)))
	}
	return row
}

// Binomial is Pascal's triangle, T(n,k) = C(n,k).
//
// [0] 1
// [1] 1, 1
// [2] 1, 2, 1
// [3] 1, 3, 3, 1
// [4] 1, 4, 6, 4, 1
var Binomial = tabl.New("Binomial", binomialRow, "A007318")

// BinomialInv is the inverse of Pascal's triangle,
// T(n,k) = (-1)^(n-k) C(n,k).
var BinomialInv = tabl.New("BinomialInv", func(n int) tabl.Row {
	row := binomialRow(n)
	for k := range row {
		if (n-k)%2 != 0 {
			row[k] = new(big.Int).Neg(row[k])
		}
	}
	return row
}, "A130595")
