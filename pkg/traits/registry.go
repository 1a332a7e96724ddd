package traits

// The trait registry. Built once at package initialization and never
// mutated afterwards; the order is fixed and reporting-relevant, with
// Triangle always first.

func rowTrait(name string, size int, tex string, f RowFunc) Trait {
	return Trait{Name: name, Kind: RowBased, Size: size, TeX: tex, row: f}
}

func tabTrait(name string, size, rows int, tex string, f TabFunc) Trait {
	return Trait{Name: name, Kind: TableBased, Size: size, Rows: rows, TeX: tex, tab: f}
}

// Registry lists every trait in application order.
var Registry = []Trait{
	rowTrait("Triangle", 7, `T_{n,k}`, trTriangle),
	tabTrait("Tinv", 7, 7, `T^{-1}_{n,k}`, trTinv),
	rowTrait("Trev", 7, `T_{n,n-k}`, trTrev),
	tabTrait("Tinvrev", 7, 7, `(T_{n,n-k})^{-1}`, trTinvrev),
	rowTrait("Toff11", 7, `T_{n+1,k+1}`, trToff11),
	rowTrait("Trev11", 7, `T_{n+1,n-k+1}`, trTrev11),
	tabTrait("Tinv11", 7, 8, `T^{-1}_{n+1,k+1}`, trTinv11),
	tabTrait("Tinvrev11", 7, 8, `(T_{n+1,n-k+1})^{-1}`, trTinvrev11),
	tabTrait("Tantidiag", 9, 9, `T_{n-k,k}\ (k \le n/2)`, trTantidiag),
	rowTrait("Tacc", 7, `\sum_{j=0}^{k} T_{n,j}`, trTacc),
	rowTrait("Talt", 7, `T_{n,k}\ (-1)^{k}`, trTalt),
	rowTrait("Tder", 7, `T_{n+1,k+1}\ (k+1)`, trTder),
	tabTrait("TablCol0", 28, 28, `T_{n,0}`, tablCol(0)),
	tabTrait("TablCol1", 28, 29, `T_{n+1,1}`, tablCol(1)),
	tabTrait("TablCol2", 28, 30, `T_{n+2,2}`, tablCol(2)),
	tabTrait("TablCol3", 28, 31, `T_{n+3,3}`, tablCol(3)),
	tabTrait("TablDiag0", 28, 28, `T_{n,n}`, tablDiag(0)),
	tabTrait("TablDiag1", 28, 29, `T_{n+1,n}`, tablDiag(1)),
	tabTrait("TablDiag2", 28, 30, `T_{n+2,n}`, tablDiag(2)),
	tabTrait("TablDiag3", 28, 31, `T_{n+3,n}`, tablDiag(3)),
	rowTrait("TablLcm", 28, `\text{lcm}_{k=0}^{n}\ |T_{n,k}|\ (T_{n,k}>1)`, trTablLcm),
	rowTrait("TablGcd", 28, `\text{gcd}_{k=0}^{n}\ |T_{n,k}|\ (T_{n,k}>1)`, trTablGcd),
	rowTrait("TablMax", 28, `\text{max}_{k=0}^{n}\ |T_{n,k}|`, trTablMax),
	rowTrait("TablSum", 28, `\sum_{k=0}^{n} T_{n,k}`, trTablSum),
	rowTrait("EvenSum", 28, `\sum_{k=0}^{n} T_{n,k}\ [2|k]`, trEvenSum),
	rowTrait("OddSum", 28, `\sum_{k=0}^{n} T_{n,k}\ (1-[2|k])`, trOddSum),
	rowTrait("AltSum", 28, `\sum_{k=0}^{n} T_{n,k}\ (-1)^{k}`, trAltSum),
	rowTrait("AbsSum", 28, `\sum_{k=0}^{n} | T_{n,k} |`, trAbsSum),
	rowTrait("AccSum", 28, `\sum_{k=0}^{n} \sum_{j=0}^{k} T_{n,j}`, trAccSum),
	rowTrait("AccRevSum", 28, `\sum_{k=0}^{n} \sum_{j=0}^{k} T_{n,n-j}`, trAccRevSum),
	tabTrait("AntiDSum", 28, 28, `\sum_{k=0}^{n/2} T_{n-k,k}`, trAntiDSum),
	tabTrait("ColMiddle", 28, 28, `T_{n,n/2}`, trColMiddle),
	tabTrait("CentralE", 28, 55, `T_{2n,n}`, trCentralE),
	tabTrait("CentralO", 28, 56, `T_{2n+1,n}`, trCentralO),
	rowTrait("PosHalf", 28, `\sum_{k=0}^{n} T_{n,k}\ 2^{n-k}`, trPosHalf),
	rowTrait("NegHalf", 28, `\sum_{k=0}^{n} T_{n,k}\ (-2)^{n-k}`, trNegHalf),
	tabTrait("TransNat0", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ k`, trans(natural)),
	tabTrait("TransNat1", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ (k+1)`, trans(natural1)),
	tabTrait("TransSqrs", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ k^{2}`, trans(square)),
	tabTrait("BinConv", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ \binom{n}{k}`, trBinConv),
	tabTrait("InvBinConv", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ (-1)^{n-k}\ \binom{n}{k}`, trInvBinConv),
	rowTrait("PolyRow1", 28, `\sum_{k=0}^{1} T_{1,k}\ n^k`, polyRow(1)),
	rowTrait("PolyRow2", 28, `\sum_{k=0}^{2} T_{2,k}\ n^k`, polyRow(2)),
	rowTrait("PolyRow3", 28, `\sum_{k=0}^{3} T_{3,k}\ n^k`, polyRow(3)),
	tabTrait("PolyCol2", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ 2^k`, polyCol(2)),
	tabTrait("PolyCol3", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ 3^k`, polyCol(3)),
	tabTrait("PolyDiag", 28, 28, `\sum_{k=0}^{n} T_{n,k}\ n^k`, trPolyDiag),
	rowTrait("RevToff11", 7, `T_{n+1,n-k}`, reversed(trToff11)),
	rowTrait("RevTrev11", 7, `T_{n+1,n-k}`, reversed(trTrev11)),
	tabTrait("RevTinv11", 7, 8, `T^{-1}_{n+1,n-k}`, trRevTinv11),
	tabTrait("RevTantidiag", 9, 9, `T_{n-k,n-2k}\ (k \le n/2)`, trRevTantidiag),
	rowTrait("RevTacc", 7, `\sum_{j=0}^{n-k} T_{n,n-j}`, reversed(trTacc)),
	rowTrait("RevTalt", 7, `T_{n,n-k}\ (-1)^{n-k}`, reversed(trTalt)),
	rowTrait("RevTder", 7, `T_{n+1,n-k}\ (n-k+1)`, reversed(trTder)),
	rowTrait("RevEvenSum", 28, `\sum_{k=0}^{n} T_{n,n-k}\ [2|k]`, reversed(trEvenSum)),
	rowTrait("RevOddSum", 28, `\sum_{k=0}^{n} T_{n,n-k}\ (1-[2|k])`, reversed(trOddSum)),
	rowTrait("RevAccRevSum", 28, `\sum_{k=0}^{n} \sum_{j=0}^{k} T_{n,n-j}`, reversed(trAccRevSum)),
	tabTrait("RevAntiDSum", 28, 28, `\sum_{k=0}^{n/2} T_{n-k,n-k}`, trRevAntiDSum),
	tabTrait("RevColMiddle", 28, 28, `T_{n,n/2}`, trRevColMiddle),
	tabTrait("RevCentralO", 28, 56, `T_{2n+1,n+1}`, trRevCentralO),
	rowTrait("RevPosHalf", 28, `\sum_{k=0}^{n} T_{n,n-k}\ 2^{n-k}`, reversed(trPosHalf)),
	rowTrait("RevNegHalf", 28, `\sum_{k=0}^{n} T_{n,n-k}\ (-2)^{n-k}`, reversed(trNegHalf)),
	tabTrait("RevTransNat0", 28, 28, `\sum_{k=0}^{n} T_{n,n-k}\ k`, tabReversed(trans(natural))),
	tabTrait("RevTransNat1", 28, 28, `\sum_{k=0}^{n} T_{n,n-k}\ (k+1)`, tabReversed(trans(natural1))),
	tabTrait("RevTransSqrs", 28, 28, `\sum_{k=0}^{n} T_{n,n-k}\ k^{2}`, tabReversed(trans(square))),
	rowTrait("RevPolyRow1", 28, `\sum_{k=0}^{1} T_{1,n-k}\ n^k`, reversed(polyRow(1))),
	rowTrait("RevPolyRow2", 28, `\sum_{k=0}^{2} T_{2,n-k}\ n^k`, reversed(polyRow(2))),
	rowTrait("RevPolyRow3", 28, `\sum_{k=0}^{3} T_{3,n-k}\ n^k`, reversed(polyRow(3))),
	tabTrait("RevPolyCol3", 28, 28, `\sum_{k=0}^{n} T_{n,n-k}\ 3^k`, tabReversed(polyCol(3))),
	tabTrait("RevPolyDiag", 28, 28, `\sum_{k=0}^{n} T_{n,n-k}\ n^k`, tabReversed(trPolyDiag)),
}

var byName = func() map[string]Trait {
	m := make(map[string]Trait, len(Registry))
	for _, tr := range Registry {
		m[tr.Name] = tr
	}
	return m
}()

// Lookup returns the named trait.
func Lookup(name string) (Trait, bool) {
	tr, ok := byName[name]
	return tr, ok
}

// Names returns all trait names in registry order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, tr := range Registry {
		names[i] = tr.Name
	}
	return names
}
