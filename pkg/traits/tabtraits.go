package traits

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Table-based trait implementations. Each consumes a materialized table
// with the trait's declared row count; size drives the output length.
// Inversion-based traits return an empty sequence when the triangle has
// no integer inverse, which callers treat as "not applicable".

func trTinv(tb tabl.Tabl, size int) tabl.Seq {
	inv, err := tabl.InvertTriangle(tb[:size])
	if err != nil {
		return nil
	}
	return flatten(inv)
}

func trTinvrev(tb tabl.Tabl, size int) tabl.Seq {
	inv, err := tabl.InvertTriangle(revTabl(tb[:size]))
	if err != nil {
		return nil
	}
	return flatten(inv)
}

func trTinv11(tb tabl.Tabl, size int) tabl.Seq {
	inv, err := tabl.InvertTriangle(off11Tabl(tb, size))
	if err != nil {
		return nil
	}
	return flatten(inv)
}

func trTinvrev11(tb tabl.Tabl, size int) tabl.Seq {
	inv, err := tabl.InvertTriangle(revTabl(off11Tabl(tb, size)))
	if err != nil {
		return nil
	}
	return flatten(inv)
}

func trRevTinv11(tb tabl.Tabl, size int) tabl.Seq {
	inv, err := tabl.InvertTriangle(off11Tabl(revTabl(tb), size))
	if err != nil {
		return nil
	}
	return flatten(inv)
}

func antidiagRow(tb tabl.Tabl, m int) tabl.Row {
	row := make(tabl.Row, (m+2)/2)
	for k := range row {
		row[k] = tb[m-k][k]
	}
	return row
}

func trTantidiag(tb tabl.Tabl, size int) tabl.Seq {
	rows := make([]tabl.Row, size)
	for m := 0; m < size; m++ {
		rows[m] = antidiagRow(tb, m)
	}
	return flatten(rows)
}

func trRevTantidiag(tb tabl.Tabl, size int) tabl.Seq {
	return trTantidiag(revTabl(tb), size)
}

// tablCol extracts column c read from the main diagonal downward.
func tablCol(c int) TabFunc {
	return func(tb tabl.Tabl, size int) tabl.Seq {
		seq := make(tabl.Seq, size)
		for n := 0; n < size; n++ {
			seq[n] = tb[c+n][c]
		}
		return seq
	}
}

// tablDiag extracts the diagonal starting at the left edge of row d.
func tablDiag(d int) TabFunc {
	return func(tb tabl.Tabl, size int) tabl.Seq {
		seq := make(tabl.Seq, size)
		for k := 0; k < size; k++ {
			seq[k] = tb[d+k][k]
		}
		return seq
	}
}

func trColMiddle(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = tb[n][n/2]
	}
	return seq
}

func trRevColMiddle(tb tabl.Tabl, size int) tabl.Seq {
	return trColMiddle(revTabl(tb), size)
}

func trCentralE(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = tb[2*n][n]
	}
	return seq
}

func trCentralO(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = tb[2*n+1][n]
	}
	return seq
}

func trRevCentralO(tb tabl.Tabl, size int) tabl.Seq {
	return trCentralO(revTabl(tb), size)
}

func trAntiDSum(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for m := 0; m < size; m++ {
		sum := new(big.Int)
		for _, v := range antidiagRow(tb, m) {
			sum.Add(sum, v)
		}
		seq[m] = sum
	}
	return seq
}

func trRevAntiDSum(tb tabl.Tabl, size int) tabl.Seq {
	return trAntiDSum(revTabl(tb), size)
}

// trans applies the linear map induced by the table to the sequence
// k -> s(k).
func trans(s func(k int) *big.Int) TabFunc {
	return func(tb tabl.Tabl, size int) tabl.Seq {
		seq := make(tabl.Seq, size)
		tmp := new(big.Int)
		for n := 0; n < size; n++ {
			sum := new(big.Int)
			for k, v := range tb[n] {
				sum.Add(sum, tmp.Mul(v, s(k)))
			}
			seq[n] = sum
		}
		return seq
	}
}

func natural(k int) *big.Int  { return bi(int64(k)) }
func natural1(k int) *big.Int { return bi(int64(k + 1)) }
func square(k int) *big.Int   { return bi(int64(k) * int64(k)) }

func trBinConv(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = dot(binomialRow(n), tb[n])
	}
	return seq
}

func trInvBinConv(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = dot(invBinomialRow(n), tb[n])
	}
	return seq
}

// polyCol evaluates each row as a polynomial at the fixed point x.
func polyCol(x int64) TabFunc {
	return func(tb tabl.Tabl, size int) tabl.Seq {
		seq := make(tabl.Seq, size)
		for n := 0; n < size; n++ {
			seq[n] = polyAsc(tb[n], bi(x))
		}
		return seq
	}
}

func trPolyDiag(tb tabl.Tabl, size int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = polyAsc(tb[n], bi(int64(n)))
	}
	return seq
}

// tabReversed reuses a table-based trait against the row-reversed table.
func tabReversed(f TabFunc) TabFunc {
	return func(tb tabl.Tabl, size int) tabl.Seq {
		return f(revTabl(tb), size)
	}
}
