package tabl

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// Row is one row of a triangle: row n holds exactly n+1 entries.
type Row []*big.Int

// Tabl is a jagged lower-triangular array, rows 0..size-1.
type Tabl []Row

// Seq is a flat integer sequence.
type Seq []*big.Int

// RowGen generates row n of a triangle. Implementations must be pure and
// total for n >= 0 and must return exactly n+1 entries.
type RowGen func(n int) Row

// SeqFunc maps an index to a sequence term, used by linear transforms.
type SeqFunc func(k int) *big.Int

// RowOf builds a Row from small integer literals. Intended for triangle
// definitions and tests.
func RowOf(vals ...int64) Row {
	row := make(Row, len(vals))
	for i, v := range vals {
		row[i] = big.NewInt(v)
	}
	return row
}

// Table is an integer triangle: a named, cached view over a pure row
// generator. A Table is immutable once constructed; all mutation below is
// cache fill, guarded so concurrent readers are safe.
type Table struct {
	name string
	gen  RowGen
	sim  []string

	mu   sync.Mutex
	rows []Row

	invMu   sync.Mutex
	invRows Tabl
	invBad  bool
}

// New creates a Table from a generator. The optional sim arguments list
// catalog identifiers of closely related sequences; they are informational
// and do not affect any computation.
func New(name string, gen RowGen, sim ...string) *Table {
	return &Table{name: name, gen: gen, sim: sim}
}

// FromTabl creates a Table backed by pre-materialized rows. The resulting
// Table is only defined for the rows given; requesting a row beyond them
// panics. Used for inverse-based transforms, which exist only up to the
// size they were computed for.
func FromTabl(name string, rows Tabl) *Table {
	return New(name, func(n int) Row {
		if n >= len(rows) {
			panic(fmt.Sprintf("tabl: %s: row %d beyond materialized size %d", name, n, len(rows)))
		}
		return rows[n]
	})
}

// Name returns the table identifier.
func (t *Table) Name() string { return t.name }

// Similars returns the catalog identifiers of related sequences.
func (t *Table) Similars() []string {
	out := make([]string, len(t.sim))
	copy(out, t.sim)
	return out
}

// Gen returns a cache-backed generator for this table. The returned
// function is safe for concurrent use and shares the table's row cache.
func (t *Table) Gen() RowGen {
	return t.Row
}

// Row returns row n. Rows are generated once and cached; the returned
// slice is shared and must not be modified. Panics if n is negative or the
// generator violates the n+1 length contract, both programmer errors.
func (t *Table) Row(n int) Row {
	if n < 0 {
		panic(fmt.Sprintf("tabl: %s: row %d: %v", t.name, n, ErrIndexOutOfRange))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.rows) <= n {
		i := len(t.rows)
		row := t.gen(i)
		if len(row) != i+1 {
			panic(fmt.Sprintf("tabl: %s: generator returned %d entries for row %d, want %d",
				t.name, len(row), i, i+1))
		}
		t.rows = append(t.rows, row)
	}
	return t.rows[n]
}

// Val returns the entry T(n, k). Returns ErrIndexOutOfRange if the index
// lies outside the triangle.
func (t *Table) Val(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("%s: val(%d,%d): %w", t.name, n, k, ErrIndexOutOfRange)
	}
	return t.Row(n)[k], nil
}

// Tab returns the first size rows in jagged triangular form.
func (t *Table) Tab(size int) Tabl {
	tb := make(Tabl, size)
	for n := 0; n < size; n++ {
		tb[n] = t.Row(n)
	}
	return tb
}

// Mat returns the first size rows as an explicit size x size matrix, each
// row zero-padded on the right.
func (t *Table) Mat(size int) Tabl {
	zero := big.NewInt(0)
	m := make(Tabl, size)
	for n := 0; n < size; n++ {
		row := make(Row, size)
		src := t.Row(n)
		for k := 0; k < size; k++ {
			if k <= n {
				row[k] = src[k]
			} else {
				row[k] = zero
			}
		}
		m[n] = row
	}
	return m
}

// Flat returns the first size rows read row by row as one sequence.
func (t *Table) Flat(size int) Seq {
	seq := make(Seq, 0, size*(size+1)/2)
	for n := 0; n < size; n++ {
		seq = append(seq, t.Row(n)...)
	}
	return seq
}

// Rev returns row n in reverse order.
func (t *Table) Rev(n int) Row {
	src := t.Row(n)
	row := make(Row, len(src))
	for k, v := range src {
		row[len(src)-1-k] = v
	}
	return row
}

// Antidiag returns the m-th upward anti-diagonal: T(m-k, k) for
// k = 0..floor(m/2).
func (t *Table) Antidiag(m int) Row {
	row := make(Row, (m+2)/2)
	for k := range row {
		row[k] = t.Row(m - k)[k]
	}
	return row
}

// Alt returns row n with alternating signs: T(n,k) * (-1)^k.
func (t *Table) Alt(n int) Row {
	src := t.Row(n)
	row := make(Row, len(src))
	for k, v := range src {
		if k%2 == 0 {
			row[k] = v
		} else {
			row[k] = new(big.Int).Neg(v)
		}
	}
	return row
}

// Acc returns the prefix sums of row n.
func (t *Table) Acc(n int) Row {
	src := t.Row(n)
	row := make(Row, len(src))
	sum := new(big.Int)
	for k, v := range src {
		sum = new(big.Int).Add(sum, v)
		row[k] = sum
	}
	return row
}

// Diff returns the first differences of row n: T(n,k+1) - T(n,k). The
// result has n entries and is empty for row 0.
func (t *Table) Diff(n int) Row {
	src := t.Row(n)
	row := make(Row, len(src)-1)
	for k := range row {
		row[k] = new(big.Int).Sub(src[k+1], src[k])
	}
	return row
}

// Der returns the derivative of row n read as polynomial coefficients in
// ascending powers: T(n,k+1) * (k+1). The result has n entries.
func (t *Table) Der(n int) Row {
	src := t.Row(n)
	row := make(Row, len(src)-1)
	for k := range row {
		row[k] = new(big.Int).Mul(src[k+1], big.NewInt(int64(k+1)))
	}
	return row
}

// Diag returns the diagonal of length size starting at the left edge of
// row n: T(n+i, i) for i = 0..size-1.
func (t *Table) Diag(n, size int) Seq {
	seq := make(Seq, size)
	for i := 0; i < size; i++ {
		seq[i] = t.Row(n + i)[i]
	}
	return seq
}

// Col returns column k read downward from the main diagonal: T(k+i, k) for
// i = 0..size-1.
func (t *Table) Col(k, size int) Seq {
	seq := make(Seq, size)
	for i := 0; i < size; i++ {
		seq[i] = t.Row(k + i)[k]
	}
	return seq
}

// Sum returns the sum of row n.
func (t *Table) Sum(n int) *big.Int {
	sum := new(big.Int)
	for _, v := range t.Row(n) {
		sum.Add(sum, v)
	}
	return sum
}

// Sums returns the row sums of the first size rows.
func (t *Table) Sums(size int) Seq {
	seq := make(Seq, size)
	for n := 0; n < size; n++ {
		seq[n] = t.Sum(n)
	}
	return seq
}

// Poly evaluates row n as a polynomial in x with coefficients in ascending
// powers: sum of T(n,k) * x^k.
func (t *Table) Poly(n int, x *big.Int) *big.Int {
	row := t.Row(n)
	// Horner, highest coefficient first.
	res := new(big.Int).Set(row[len(row)-1])
	for k := len(row) - 2; k >= 0; k-- {
		res.Mul(res, x)
		res.Add(res, row[k])
	}
	return res
}

// Trans applies the linear map induced by the triangle to the sequence s:
// result[n] = sum of T(n,k) * s(k) for k = 0..n.
func (t *Table) Trans(s SeqFunc, size int) Seq {
	seq := make(Seq, size)
	tmp := new(big.Int)
	for n := 0; n < size; n++ {
		sum := new(big.Int)
		for k, v := range t.Row(n) {
			sum.Add(sum, tmp.Mul(v, s(k)))
		}
		seq[n] = sum
	}
	return seq
}

// InvTrans applies the linear map induced by the inverse triangle.
// Fails with ErrNonIntegerInverse if the table is not invertible up to
// size rows.
func (t *Table) InvTrans(s SeqFunc, size int) (Seq, error) {
	inv, err := t.Inv(size)
	if err != nil {
		return nil, err
	}
	seq := make(Seq, size)
	tmp := new(big.Int)
	for n := 0; n < size; n++ {
		sum := new(big.Int)
		for k, v := range inv[n] {
			sum.Add(sum, tmp.Mul(v, s(k)))
		}
		seq[n] = sum
	}
	return seq, nil
}

// Off returns the row generator of the subtriangle rooted at (N, K):
// row n is base row n+N restricted to columns K..N+n.
func (t *Table) Off(N, K int) RowGen {
	return func(n int) Row {
		return t.Row(n + N)[K : N+n+1]
	}
}

// Rev11 returns row n of the (1,1)-offset subtriangle, reversed.
func (t *Table) Rev11(n int) Row {
	src := t.Off(1, 1)(n)
	row := make(Row, len(src))
	for k, v := range src {
		row[len(src)-1-k] = v
	}
	return row
}

// Show formats the first size rows with their row indices, one row per
// line. Presentation only.
func (t *Table) Show(size int) string {
	var b strings.Builder
	for n := 0; n < size; n++ {
		fmt.Fprintf(&b, "[%d] %s\n", n, formatRow(t.Row(n)))
	}
	return b.String()
}

func formatRow(row Row) string {
	parts := make([]string, len(row))
	for k, v := range row {
		parts[k] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
