package tables

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// StirlingSet holds the Stirling numbers of the second kind: T(n,k)
// counts partitions of an n-set into k blocks.
//
// [0] 1
// [1] 0, 1
// [2] 0, 1, 1
// [3] 0, 1, 3, 1
// [4] 0, 1, 7, 6, 1
var StirlingSet = tabl.New("StirlingSet", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(0)
		for k := 1; k <= m; k++ {
			v := new(big.Int).Set(row[k-1])
			if k < m {
				v.Add(v, new(big.Int).Mul(bi(int64(k)), row[k]))
			}
			next[k] = v
		}
		row = next
	}
	return row
}, "A048993")

// StirlingCycle holds the unsigned Stirling numbers of the first kind:
// T(n,k) counts permutations of n elements with k cycles.
var StirlingCycle = tabl.New("StirlingCycle", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		next := make(tabl.Row, m+1)
		next[0] = bi(0)
		for k := 1; k <= m; k++ {
			v := new(big.Int).Set(row[k-1])
			if k < m {
				v.Add(v, new(big.Int).Mul(bi(int64(m-1)), row[k]))
			}
			next[k] = v
		}
		row = next
	}
	return row
}, "A132393")

// StirlingCycleB holds the type-B Stirling cycle numbers:
// T(n,k) = T(n-1,k-1) + (2n-1) T(n-1,k).
var StirlingCycleB = tabl.New("StirlingCycleB", func(n int) tabl.Row {
	row := tabl.RowOf(1)
	for m := 1; m <= n; m++ {
		odd := bi(int64(2*m - 1))
		next := make(tabl.Row, m+1)
		next[0] = new(big.Int).Mul(odd, row[0])
		for k := 1; k < m; k++ {
			v := new(big.Int).Mul(odd, row[k])
			next[k] = v.Add(v, row[k-1])
		}
		next[m] = bi(1)
		row = next
	}
	return row
}, "A028338", "A039757", "A039758")
