package tabl

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// invertRow computes row n of the inverse, given row n of the base table
// and the already-inverted rows 0..n-1. Every division must be exact;
// a zero diagonal entry or a non-exact quotient means the table has no
// integer inverse at this size.
func invertRow(base Row, inv Tabl) (Row, error) {
	n := len(base) - 1
	d := base[n]
	if d.Sign() == 0 {
		return nil, fmt.Errorf("zero diagonal in row %d: %w", n, ErrNonIntegerInverse)
	}
	row := make(Row, n+1)

	q, r := new(big.Int).QuoRem(one, d, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("diagonal %s of row %d does not divide 1: %w", d, n, ErrNonIntegerInverse)
	}
	row[n] = q

	tmp := new(big.Int)
	for k := n - 1; k >= 0; k-- {
		sum := new(big.Int)
		for j := k; j < n; j++ {
			sum.Add(sum, tmp.Mul(base[j], inv[j][k]))
		}
		q, r := new(big.Int).QuoRem(sum, d, new(big.Int))
		if r.Sign() != 0 {
			return nil, fmt.Errorf("non-exact division in row %d, column %d: %w", n, k, ErrNonIntegerInverse)
		}
		row[k] = q.Neg(q)
	}
	return row, nil
}

// InvertTriangle computes the matrix inverse of a lower-triangular table,
// restricted to the triangular entries k <= n. It fails with
// ErrNonIntegerInverse as soon as any required division is not exact; it
// never rounds.
func InvertTriangle(m Tabl) (Tabl, error) {
	inv := make(Tabl, 0, len(m))
	for _, base := range m {
		row, err := invertRow(base, inv)
		if err != nil {
			return nil, err
		}
		inv = append(inv, row)
	}
	return inv, nil
}

// Inv returns the first size rows of the inverse triangle. The inverse is
// computed lazily, row by row, and cached; once a row fails the exactness
// check, every request reaching past the computed prefix fails with
// ErrNonIntegerInverse.
func (t *Table) Inv(size int) (Tabl, error) {
	t.invMu.Lock()
	defer t.invMu.Unlock()
	if t.invBad && size > len(t.invRows) {
		return nil, fmt.Errorf("%s: inverse up to %d rows: %w", t.name, size, ErrNonIntegerInverse)
	}
	for len(t.invRows) < size {
		row, err := invertRow(t.Row(len(t.invRows)), t.invRows)
		if err != nil {
			t.invBad = true
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
		t.invRows = append(t.invRows, row)
	}
	return t.invRows[:size:size], nil
}

// RevInv returns the inverse triangle with each row reversed.
func (t *Table) RevInv(size int) (Tabl, error) {
	inv, err := t.Inv(size)
	if err != nil {
		return nil, err
	}
	return reverseRows(inv), nil
}

// InvRev returns the inverse of the row-reversed triangle.
func (t *Table) InvRev(size int) (Tabl, error) {
	m := make(Tabl, size)
	for n := 0; n < size; n++ {
		m[n] = t.Rev(n)
	}
	inv, err := InvertTriangle(m)
	if err != nil {
		return nil, fmt.Errorf("%s reversed: %w", t.name, err)
	}
	return inv, nil
}

// Inv11 returns the inverse of the (1,1)-offset subtriangle.
func (t *Table) Inv11(size int) (Tabl, error) {
	gen := t.Off(1, 1)
	m := make(Tabl, size)
	for n := 0; n < size; n++ {
		m[n] = gen(n)
	}
	inv, err := InvertTriangle(m)
	if err != nil {
		return nil, fmt.Errorf("%s offset (1,1): %w", t.name, err)
	}
	return inv, nil
}

// RevInv11 returns the inverse of the (1,1)-offset subtriangle with each
// row reversed.
func (t *Table) RevInv11(size int) (Tabl, error) {
	inv, err := t.Inv11(size)
	if err != nil {
		return nil, err
	}
	return reverseRows(inv), nil
}

// InvRev11 returns the inverse of the row-reversed (1,1)-offset
// subtriangle.
func (t *Table) InvRev11(size int) (Tabl, error) {
	m := make(Tabl, size)
	for n := 0; n < size; n++ {
		m[n] = t.Rev11(n)
	}
	inv, err := InvertTriangle(m)
	if err != nil {
		return nil, fmt.Errorf("%s offset (1,1) reversed: %w", t.name, err)
	}
	return inv, nil
}

func reverseRows(m Tabl) Tabl {
	out := make(Tabl, len(m))
	for n, src := range m {
		row := make(Row, len(src))
		for k, v := range src {
			row[len(src)-1-k] = v
		}
		out[n] = row
	}
	return out
}
