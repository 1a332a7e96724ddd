package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Narayana2 is a Narayana-type triangle satisfying the order-2 row
// recurrence of A352687; column 0 vanishes for n > 0.
//
// [0] 1
// [1] 0, 1
// [2] 0, 1, 1
// [3] 0, 1, 2, 1
// [4] 0, 1, 4, 4, 1
var Narayana2 = tabl.New("Narayana2", func(n int) tabl.Row {
	rows := []tabl.Row{tabl.RowOf(1), tabl.RowOf(0, 1), tabl.RowOf(0, 1, 1)}
	if n < 3 {
		return rows[n]
	}
	at := func(r tabl.Row, k int) *big.Int {
		if k < 0 || k >= len(r) {
			return bi(0)
		}
		return r[k]
	}
	for m := 3; m <= n; m++ {
		a := rows[m-2]
		b := make(tabl.Row, m+1)
		copy(b, rows[m-1])
		b[m] = bi(1)
		den := big.NewInt(int64(m))
		for k := m - 1; k >= 2; k-- {
			u := new(big.Int).Add(b[k], b[k-1])
			u.Mul(u, big.NewInt(int64(2*m-3)))
			v := new(big.Int).Set(at(a, k))
			v.Sub(v, new(big.Int).Lsh(at(a, k-1), 1))
			v.Add(v, at(a, k-2))
			v.Mul(v, big.NewInt(int64(m-3)))
			u.Sub(u, v)
			b[k] = u.Quo(u, den)
		}
		rows = append(rows, b)
	}
	return rows[n]
}, "A352687")
