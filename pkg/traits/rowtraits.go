package traits

import (
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Row-based trait implementations. Each consumes the row generator
// directly; size is the number of rows flattened or terms emitted.

func altRow(src tabl.Row) tabl.Row {
	row := make(tabl.Row, len(src))
	for k, v := range src {
		if k%2 == 0 {
			row[k] = v
		} else {
			row[k] = new(big.Int).Neg(v)
		}
	}
	return row
}

func accRow(src tabl.Row) tabl.Row {
	row := make(tabl.Row, len(src))
	sum := new(big.Int)
	for k, v := range src {
		sum = new(big.Int).Add(sum, v)
		row[k] = sum
	}
	return row
}

// derRow turns row n+1 into the derivative of its polynomial form:
// [next[k+1] * (k+1)], one entry shorter than next.
func derRow(next tabl.Row) tabl.Row {
	row := make(tabl.Row, len(next)-1)
	for k := range row {
		row[k] = new(big.Int).Mul(next[k+1], bi(int64(k+1)))
	}
	return row
}

// perRow flattens f applied to the first size rows.
func perRow(gen tabl.RowGen, size int, f func(tabl.Row) tabl.Row) tabl.Seq {
	rows := make([]tabl.Row, size)
	for n := 0; n < size; n++ {
		rows[n] = f(gen(n))
	}
	return flatten(rows)
}

// perRowTerm emits one term of f per row.
func perRowTerm(gen tabl.RowGen, size int, f func(tabl.Row) *big.Int) tabl.Seq {
	seq := make(tabl.Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = f(gen(n))
	}
	return seq
}

func idRow(r tabl.Row) tabl.Row { return r }

func trTriangle(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(gen, size, idRow)
}

func trTrev(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(gen, size, revRow)
}

func trToff11(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(off11(gen), size, idRow)
}

func trTrev11(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(off11(gen), size, revRow)
}

func trTalt(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(gen, size, altRow)
}

func trTacc(gen tabl.RowGen, size int) tabl.Seq {
	return perRow(gen, size, accRow)
}

func trTder(gen tabl.RowGen, size int) tabl.Seq {
	rows := make([]tabl.Row, size)
	for n := 0; n < size; n++ {
		rows[n] = derRow(gen(n + 1))
	}
	return flatten(rows)
}

func sumEven(row tabl.Row) *big.Int {
	sum := new(big.Int)
	for k := 0; k < len(row); k += 2 {
		sum.Add(sum, row[k])
	}
	return sum
}

func sumOdd(row tabl.Row) *big.Int {
	sum := new(big.Int)
	for k := 1; k < len(row); k += 2 {
		sum.Add(sum, row[k])
	}
	return sum
}

func trTablSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		sum := new(big.Int)
		for _, v := range row {
			sum.Add(sum, v)
		}
		return sum
	})
}

func trEvenSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, sumEven)
}

func trOddSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, sumOdd)
}

func trAltSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		return new(big.Int).Sub(sumEven(row), sumOdd(row))
	})
}

func trAbsSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		sum := new(big.Int)
		tmp := new(big.Int)
		for _, v := range row {
			sum.Add(sum, tmp.Abs(v))
		}
		return sum
	})
}

func trAccSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		sum := new(big.Int)
		for _, v := range accRow(row) {
			sum.Add(sum, v)
		}
		return sum
	})
}

func trAccRevSum(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		sum := new(big.Int)
		for _, v := range accRow(revRow(row)) {
			sum.Add(sum, v)
		}
		return sum
	})
}

// rowLcm and rowGcd ignore the trivial entries -1, 0 and 1; a row with
// only trivial entries yields 1.
func nontrivial(row tabl.Row) []*big.Int {
	var out []*big.Int
	for _, v := range row {
		if v.CmpAbs(bi(1)) > 0 {
			out = append(out, v)
		}
	}
	return out
}

func rowLcm(row tabl.Row) *big.Int {
	vals := nontrivial(row)
	if len(vals) == 0 {
		return bi(1)
	}
	res := new(big.Int).Abs(vals[0])
	for _, v := range vals[1:] {
		a := new(big.Int).Abs(v)
		g := new(big.Int).GCD(nil, nil, res, a)
		res.Mul(res, a.Quo(a, g))
	}
	return res
}

func rowGcd(row tabl.Row) *big.Int {
	vals := nontrivial(row)
	if len(vals) == 0 {
		return bi(1)
	}
	res := new(big.Int).Abs(vals[0])
	for _, v := range vals[1:] {
		res.GCD(nil, nil, res, new(big.Int).Abs(v))
	}
	return res
}

func trTablLcm(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, rowLcm)
}

func trTablGcd(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, rowGcd)
}

func trTablMax(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		max := new(big.Int)
		for _, v := range row {
			if v.CmpAbs(max) > 0 {
				max = v
			}
		}
		return new(big.Int).Abs(max)
	})
}

func trPosHalf(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		return polyDesc(row, bi(2))
	})
}

func trNegHalf(gen tabl.RowGen, size int) tabl.Seq {
	return perRowTerm(gen, size, func(row tabl.Row) *big.Int {
		return polyDesc(row, bi(-2))
	})
}

// polyRow evaluates the fixed row r as a polynomial at x = 0..size-1.
func polyRow(r int) RowFunc {
	return func(gen tabl.RowGen, size int) tabl.Seq {
		row := gen(r)
		seq := make(tabl.Seq, size)
		for x := 0; x < size; x++ {
			seq[x] = polyAsc(row, bi(int64(x)))
		}
		return seq
	}
}

// reversed reuses a row-based trait against the row-reversed triangle.
func reversed(f RowFunc) RowFunc {
	return func(gen tabl.RowGen, size int) tabl.Seq {
		return f(revGen(gen), size)
	}
}
