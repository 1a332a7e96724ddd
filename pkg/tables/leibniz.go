package tables

import "github.com/PeterLuschny/tablInspector/pkg/tabl"

// Leibniz is the triangle T(n,k) = k * (n + 1 - k).
//
// [0] 0
// [1] 0, 1
// [2] 0, 2, 2
// [3] 0, 3, 4, 3
// [4] 0, 4, 6, 6, 4
var Leibniz = tabl.New("Leibniz", func(n int) tabl.Row {
	row := make(tabl.Row, n+1)
	for k := 0; k <= n; k++ {
		row[k] = bi(int64(k) * int64(n+1-k))
	}
	return row
}, "A003991")
