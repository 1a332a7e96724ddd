package oeis

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func natSeq(from, n int) tabl.Seq {
	seq := make(tabl.Seq, n)
	for i := range seq {
		seq[i] = big.NewInt(int64(from + i))
	}
	return seq
}

func negSeq(src tabl.Seq) tabl.Seq {
	out := make(tabl.Seq, len(src))
	for i, v := range src {
		out[i] = new(big.Int).Neg(v)
	}
	return out
}

func TestResolveExact(t *testing.T) {
	seq := natSeq(1, 30)
	offset, length, ok := Resolve(seq, natSeq(1, 30))
	require.True(t, ok)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 30, length)
}

func TestResolvePositiveOffset(t *testing.T) {
	seq := natSeq(1, 30)
	candidate := append(natSeq(900, 3), seq...)
	offset, length, ok := Resolve(seq, candidate)
	require.True(t, ok)
	assert.Equal(t, 3, offset)
	assert.Equal(t, 30, length)
}

func TestResolveNegativeOffset(t *testing.T) {
	// The candidate starts where the query's fourth term does.
	seq := natSeq(1, 30)
	offset, length, ok := Resolve(seq, seq[3:])
	require.True(t, ok)
	assert.Equal(t, -3, offset)
	assert.Equal(t, 27, length)
}

func TestResolveSignFlip(t *testing.T) {
	seq := natSeq(1, 30)
	offset, length, ok := Resolve(seq, negSeq(seq))
	require.True(t, ok)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 30, length)
}

func TestResolveShortRunRejected(t *testing.T) {
	// Terms agree, but one short of the minimum run.
	seq := natSeq(1, tabl.MinTerms-1)
	_, _, ok := Resolve(seq, seq)
	assert.False(t, ok)
}

func TestResolveBrokenRunRejected(t *testing.T) {
	seq := natSeq(1, 30)
	candidate := natSeq(1, 30)
	candidate[12] = big.NewInt(999) // splits the run into 12 + 17
	_, _, ok := Resolve(seq, candidate)
	assert.False(t, ok)
}

func TestResolveOffsetOutsideWindow(t *testing.T) {
	seq := natSeq(1, 30)
	candidate := append(natSeq(900, MaxOffset+1), seq...)
	_, _, ok := Resolve(seq, candidate)
	assert.False(t, ok)
}

func TestParseData(t *testing.T) {
	seq, err := parseData("1, -2,3,,4")
	require.NoError(t, err)
	require.Len(t, seq, 4)
	assert.Equal(t, "-2", seq[1].String())

	_, err = parseData("1,two,3")
	assert.Error(t, err)
}
