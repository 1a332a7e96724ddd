package oeis

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// MaxOffset bounds the alignment window of the fuzzy match.
const MaxOffset = 10

// parseData converts the comma-separated term list of a corpus entry
// into a sequence.
func parseData(data string) (tabl.Seq, error) {
	parts := strings.Split(data, ",")
	seq := make(tabl.Seq, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, errors.Newf("bad term %q", p)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// Resolve decides whether candidate identifies seq under the fuzzy
// matching rule: the alignment may start at any offset within
// [-MaxOffset, MaxOffset], the candidate may carry a global sign flip,
// and at least tabl.MinTerms consecutive terms must agree. Returns the
// accepted offset and run length.
func Resolve(seq, candidate tabl.Seq) (offset, length int, ok bool) {
	for _, flip := range []bool{false, true} {
		for off := 0; off <= MaxOffset; off++ {
			if n := runLength(seq, candidate, off, flip); n >= tabl.MinTerms {
				return off, n, true
			}
			if off == 0 {
				continue
			}
			if n := runLength(seq, candidate, -off, flip); n >= tabl.MinTerms {
				return -off, n, true
			}
		}
	}
	return 0, 0, false
}

// runLength returns the longest run of consecutive agreeing terms when
// candidate[i+offset] is compared against seq[i], with an optional
// global sign flip of the candidate.
func runLength(seq, candidate tabl.Seq, offset int, flip bool) int {
	best, run := 0, 0
	for i := range seq {
		j := i + offset
		if j < 0 || j >= len(candidate) {
			run = 0
			continue
		}
		c := candidate[j]
		if flip {
			c = new(big.Int).Neg(c)
		}
		if seq[i].Cmp(c) == 0 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
