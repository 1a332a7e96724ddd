package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func rowStrings(row tabl.Row) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = v.String()
	}
	return out
}

func TestRowLengthContract(t *testing.T) {
	for _, tbl := range All {
		t.Run(tbl.Name(), func(t *testing.T) {
			for n := 0; n <= 32; n++ {
				require.Len(t, tbl.Row(n), n+1, "row %d", n)
			}
		})
	}
}

func TestKnownRows(t *testing.T) {
	tests := []struct {
		table *tabl.Table
		n     int
		want  []string
	}{
		{Binomial, 4, []string{"1", "4", "6", "4", "1"}},
		{BinomialInv, 4, []string{"1", "-4", "6", "-4", "1"}},
		{Catalan, 4, []string{"1", "4", "9", "14", "14"}},
		{DyckPathsInv, 4, []string{"1", "10", "15", "7", "1"}},
		{DyckPathsInv, 5, []string{"1", "15", "35", "28", "9", "1"}},
		{Eulerian, 4, []string{"1", "11", "11", "1", "0"}},
		{FallingFactorial, 4, []string{"1", "4", "12", "24", "24"}},
		{Fubini, 4, []string{"0", "1", "14", "36", "24"}},
		{Lah, 4, []string{"0", "24", "36", "12", "1"}},
		{Leibniz, 4, []string{"0", "4", "6", "6", "4"}},
		{LucasInv, 4, []string{"1", "15", "17", "7", "1"}},
		{LucasInv, 5, []string{"1", "31", "49", "31", "9", "1"}},
		{MotzkinInv, 4, []string{"-1", "2", "3", "-4", "1"}},
		{MotzkinInv, 5, []string{"0", "-4", "2", "6", "-5", "1"}},
		{Narayana2, 4, []string{"0", "1", "4", "4", "1"}},
		{Narayana2, 5, []string{"0", "1", "7", "12", "7", "1"}},
		{Powers, 4, []string{"0", "1", "4", "3", "1"}},
		{RisingFactorial, 3, []string{"1", "3", "12", "60"}},
		{SchroederInv, 4, []string{"0", "2", "8", "6", "1"}},
		{SchroederInv, 5, []string{"0", "2", "12", "18", "8", "1"}},
		{StirlingCycle, 4, []string{"0", "6", "11", "6", "1"}},
		{StirlingCycleB, 2, []string{"3", "4", "1"}},
		{StirlingCycleB, 3, []string{"15", "23", "9", "1"}},
		{StirlingSet, 4, []string{"0", "1", "7", "6", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.table.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, rowStrings(tt.table.Row(tt.n)))
		})
	}
}

func TestLeibnizIdentities(t *testing.T) {
	assert.Equal(t, []string{"0", "4", "6", "6", "4"}, rowStrings(Leibniz.Row(4)))
	assert.Equal(t, "20", Leibniz.Sums(5)[4].String())

	col := Leibniz.Col(2, 3)
	assert.Equal(t, []string{"2", "4", "6"}, rowStrings(tabl.Row(col)))
}

func TestBinomialInvIsInverse(t *testing.T) {
	inv, err := Binomial.Inv(10)
	require.NoError(t, err)
	for n := 0; n < 10; n++ {
		want := BinomialInv.Row(n)
		for k := 0; k <= n; k++ {
			assert.Zero(t, want[k].Cmp(inv[n][k]), "row %d col %d", n, k)
		}
	}
}

func TestLookup(t *testing.T) {
	tbl, err := Lookup("Binomial")
	require.NoError(t, err)
	assert.Equal(t, "Binomial", tbl.Name())

	tbl, err = Lookup("binomial")
	require.NoError(t, err)
	assert.Equal(t, "Binomial", tbl.Name())

	_, err = Lookup("NoSuchTriangle")
	require.ErrorIs(t, err, tabl.ErrTableNotFound)
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, len(All))
	assert.Contains(t, names, "Leibniz")
	assert.Contains(t, names, "StirlingCycleB")
}

func TestSimilarsPresent(t *testing.T) {
	for _, tbl := range All {
		assert.NotEmpty(t, tbl.Similars(), "%s has no catalog references", tbl.Name())
	}
}
