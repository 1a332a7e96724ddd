package traits

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func fallingFactorialTable() *tabl.Table {
	return tabl.New("FallingFactorial", func(n int) tabl.Row {
		row := make(tabl.Row, n+1)
		row[0] = big.NewInt(1)
		for k := 1; k <= n; k++ {
			row[k] = new(big.Int).Mul(row[k-1], big.NewInt(int64(n-k+1)))
		}
		return row
	})
}

func TestExploreInsufficientRows(t *testing.T) {
	_, err := Explore(binomialTable(), tabl.MinRows-1)
	require.ErrorIs(t, err, tabl.ErrInsufficientRows)
}

func TestExplorePalindromicCollapse(t *testing.T) {
	// Pascal is palindromic and self-inverse up to signs, so every base
	// transform fingerprints like the standard one and collapses into it.
	results, err := Explore(binomialTable(), tabl.MinRows)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, res := range results {
		assert.Equal(t, Standard, res.Transform, "trait %s", res.Trait)
		assert.Equal(t, "Binomial", res.Table)
		assert.NoError(t, res.Err, "trait %s", res.Trait)
		assert.NotEmpty(t, res.Seq, "trait %s", res.Trait)
	}
}

func TestExploreTransformSet(t *testing.T) {
	// Falling factorials have a non-unit diagonal, so Inv and RevInv are
	// skipped; reversing restores a unit diagonal, so InvRev survives.
	// Alt collapses into Std because fingerprints ignore signs.
	results, err := Explore(fallingFactorialTable(), tabl.MinRows)
	require.NoError(t, err)

	got := make(map[Transform]bool)
	seen := make(map[string]bool)
	for _, res := range results {
		got[res.Transform] = true
		key := res.Transform.String() + "/" + res.Trait
		assert.False(t, seen[key], "duplicate result %s", key)
		seen[key] = true
	}

	assert.Equal(t, map[Transform]bool{
		Standard:        true,
		Reversed:        true,
		InverseReversed: true,
	}, got)
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "Std", Standard.String())
	assert.Equal(t, "InvRev", InverseReversed.String())
	assert.Equal(t, "Transform(9)", Transform(9).String())
}
