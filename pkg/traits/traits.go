package traits

import (
	"fmt"
	"math/big"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Kind distinguishes the two trait application shapes.
type Kind int

const (
	// RowBased traits consume a row generator and a target size.
	RowBased Kind = iota + 1
	// TableBased traits consume a materialized table.
	TableBased
)

// RowFunc is the implementation of a row-based trait.
type RowFunc func(gen tabl.RowGen, size int) tabl.Seq

// TabFunc is the implementation of a table-based trait. The table passed
// in has the trait's declared row count.
type TabFunc func(tb tabl.Tabl, size int) tabl.Seq

// Trait is one named transformation from a triangle to a flat sequence.
// Size drives the output length (rows to flatten, or terms to emit); Rows
// is the number of rows a table-based trait needs materialized. TeX holds
// the defining formula for listings.
type Trait struct {
	Name string
	Kind Kind
	Size int
	Rows int
	TeX  string
	row  RowFunc
	tab  TabFunc
}

// Apply runs the trait against a table. An empty result means the trait
// is not applicable to this triangle and is not an error.
func (tr Trait) Apply(t *tabl.Table) tabl.Seq {
	switch tr.Kind {
	case RowBased:
		return tr.row(t.Gen(), tr.Size)
	case TableBased:
		return tr.tab(t.Tab(tr.Rows), tr.Size)
	}
	return nil
}

// ApplyChecked runs the trait and enforces the fingerprint minimum: a
// non-empty result shorter than tabl.MinTerms fails with
// ErrInsufficientTerms. A nil result with nil error means not applicable.
func ApplyChecked(tr Trait, t *tabl.Table) (tabl.Seq, error) {
	seq := tr.Apply(t)
	if len(seq) == 0 {
		return nil, nil
	}
	if len(seq) < tabl.MinTerms {
		return nil, fmt.Errorf("%s on %s: %d terms: %w",
			tr.Name, t.Name(), len(seq), tabl.ErrInsufficientTerms)
	}
	return seq, nil
}

// Shared helpers for trait implementations.

func bi(v int64) *big.Int { return big.NewInt(v) }

func flatten(rows []tabl.Row) tabl.Seq {
	var seq tabl.Seq
	for _, r := range rows {
		seq = append(seq, r...)
	}
	return seq
}

func revRow(src tabl.Row) tabl.Row {
	row := make(tabl.Row, len(src))
	for k, v := range src {
		row[len(src)-1-k] = v
	}
	return row
}

func revTabl(tb tabl.Tabl) tabl.Tabl {
	out := make(tabl.Tabl, len(tb))
	for n, r := range tb {
		out[n] = revRow(r)
	}
	return out
}

// revGen adapts a generator so every row comes out reversed.
func revGen(gen tabl.RowGen) tabl.RowGen {
	return func(n int) tabl.Row {
		return revRow(gen(n))
	}
}

// off11 restricts a generator to the (1,1)-offset subtriangle.
func off11(gen tabl.RowGen) tabl.RowGen {
	return func(n int) tabl.Row {
		return gen(n + 1)[1 : n+2]
	}
}

// off11Tabl extracts the (1,1)-offset subtriangle rows from a
// materialized table.
func off11Tabl(tb tabl.Tabl, size int) tabl.Tabl {
	out := make(tabl.Tabl, size)
	for n := 0; n < size; n++ {
		out[n] = tb[n+1][1 : n+2]
	}
	return out
}

// polyAsc evaluates row as a polynomial with coefficients in ascending
// powers of x.
func polyAsc(row tabl.Row, x *big.Int) *big.Int {
	res := new(big.Int).Set(row[len(row)-1])
	for k := len(row) - 2; k >= 0; k-- {
		res.Mul(res, x)
		res.Add(res, row[k])
	}
	return res
}

// polyDesc evaluates row as a polynomial with coefficients in descending
// powers of x.
func polyDesc(row tabl.Row, x *big.Int) *big.Int {
	res := new(big.Int).Set(row[0])
	for k := 1; k < len(row); k++ {
		res.Mul(res, x)
		res.Add(res, row[k])
	}
	return res
}

func dot(a, b tabl.Row) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for k := range a {
		sum.Add(sum, tmp.Mul(a[k], b[k]))
	}
	return sum
}

// binomialRow returns [C(n,0) .. C(n,n)].
func binomialRow(n int) tabl.Row {
	row := make(tabl.Row, n+1)
	row[0] = bi(1)
	for k := 1; k <= n; k++ {
		v := new(big.Int).Mul(row[k-1], bi(int64(n-k+1)))
		row[k] = v.Quo(v, bi(int64(k)))
	}
	return row
}

// invBinomialRow returns [(-1)^(n-k) C(n,k) for k = 0..n], the rows of
// the inverse binomial triangle.
func invBinomialRow(n int) tabl.Row {
	row := binomialRow(n)
	for k := range row {
		if (n-k)%2 != 0 {
			row[k] = new(big.Int).Neg(row[k])
		}
	}
	return row
}
