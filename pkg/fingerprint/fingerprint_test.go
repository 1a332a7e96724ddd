package fingerprint

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func natSeq(n int) tabl.Seq {
	seq := make(tabl.Seq, n)
	for i := range seq {
		seq[i] = big.NewInt(int64(i + 1))
	}
	return seq
}

func TestNewRequiresMinTerms(t *testing.T) {
	_, err := New(natSeq(tabl.MinTerms - 1))
	require.ErrorIs(t, err, tabl.ErrInsufficientTerms)

	_, err = New(natSeq(tabl.MinTerms))
	require.NoError(t, err)
}

func TestDeterminism(t *testing.T) {
	a, err := New(natSeq(tabl.MinTerms))
	require.NoError(t, err)
	b, err := New(natSeq(tabl.MinTerms + 10))
	require.NoError(t, err)

	// Only the first MinTerms terms matter.
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Terms, b.Terms)
}

func TestSignInsensitive(t *testing.T) {
	pos := natSeq(tabl.MinTerms)
	neg := make(tabl.Seq, len(pos))
	for i, v := range pos {
		neg[i] = new(big.Int).Neg(v)
	}

	a, err := New(pos)
	require.NoError(t, err)
	b, err := New(neg)
	require.NoError(t, err)
	assert.Equal(t, a.Hash, b.Hash)
}

func TestDistinctSequencesDiffer(t *testing.T) {
	a, err := New(natSeq(tabl.MinTerms))
	require.NoError(t, err)

	other := natSeq(tabl.MinTerms)
	other[0] = big.NewInt(7)
	b, err := New(other)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestHashFormat(t *testing.T) {
	fp, err := New(natSeq(tabl.MinTerms))
	require.NoError(t, err)
	assert.Len(t, fp.Hash, 16)
	assert.NotContains(t, fp.Hash, "0x")
}

func TestTermsTruncated(t *testing.T) {
	big10 := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	seq := make(tabl.Seq, tabl.MinTerms)
	for i := range seq {
		seq[i] = big10
	}
	fp, err := New(seq)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(fp.Terms), MaxStrLen)
}

func TestSeqToString(t *testing.T) {
	seq := tabl.Seq{big.NewInt(1), big.NewInt(-2), big.NewInt(3)}

	assert.Equal(t, "1, -2, 3", SeqToString(seq, 100, 10, ", ", false))
	assert.Equal(t, "1, 2, 3", SeqToString(seq, 100, 10, ", ", true))
	assert.Equal(t, "1, -2", SeqToString(seq, 100, 2, ", ", false))
}

func TestSeqToStringRespectsMaxChars(t *testing.T) {
	seq := natSeq(50)
	s := SeqToString(seq, 20, 50, ",", false)
	assert.LessOrEqual(t, len(s), 20)
	assert.True(t, strings.HasPrefix(s, "1,2,3"))
}
