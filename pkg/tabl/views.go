package tabl

// Derived tables. Each view is a full Table in its own right: it owns a
// generator defined in terms of the base table (which is shared, never
// mutated) plus its own row cache.

// RevTable returns the table with every row of t reversed.
func RevTable(t *Table) *Table {
	return New(t.name+":Rev", func(n int) Row {
		return t.Rev(n)
	})
}

// AltTable returns the table of t with alternating signs applied to each
// row.
func AltTable(t *Table) *Table {
	return New(t.name+":Alt", func(n int) Row {
		return t.Alt(n)
	})
}

// SubTriangle returns the subtriangle of t rooted at (N, K). Only N == K
// yields a proper triangle with rows of length n+1; other offsets produce
// a generalized row shape, matching the underlying slice of the base row.
func SubTriangle(t *Table, N, K int) *Table {
	return New(t.name+":Off", t.Off(N, K))
}

// InvTable materializes the inverse of t up to size rows and wraps it as a
// bounded Table named after the base. Fails with ErrNonIntegerInverse
// where Inv does.
func InvTable(t *Table, size int) (*Table, error) {
	inv, err := t.Inv(size)
	if err != nil {
		return nil, err
	}
	return FromTabl(t.name+":Inv", inv), nil
}

// RevInvTable materializes the reverse of the inverse of t as a bounded
// Table.
func RevInvTable(t *Table, size int) (*Table, error) {
	m, err := t.RevInv(size)
	if err != nil {
		return nil, err
	}
	return FromTabl(t.name+":RevInv", m), nil
}

// InvRevTable materializes the inverse of the reverse of t as a bounded
// Table.
func InvRevTable(t *Table, size int) (*Table, error) {
	m, err := t.InvRev(size)
	if err != nil {
		return nil, err
	}
	return FromTabl(t.name+":InvRev", m), nil
}
