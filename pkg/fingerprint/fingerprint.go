// Package fingerprint turns integer sequences into canonical identities:
// a bounded human-readable string of the leading terms and a fast
// order-sensitive FNV-1a hash used as the lookup key for matching.
//
// Two sequences with identical leading MinTerms terms always produce the
// same fingerprint, independent of process or run.
package fingerprint

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// MaxStrLen caps the canonical string representation of a sequence.
const MaxStrLen = 100

// Fingerprint is the canonical identity of a sequence: the FNV-1a hash of
// the absolute values of its first tabl.MinTerms terms, plus a truncated
// display string of those terms.
type Fingerprint struct {
	Hash  string // fixed-width hex, no 0x prefix
	Terms string // comma-separated absolute terms, at most MaxStrLen chars
}

// New computes the fingerprint of seq. Fails with ErrInsufficientTerms if
// the sequence is shorter than tabl.MinTerms.
func New(seq tabl.Seq) (Fingerprint, error) {
	if len(seq) < tabl.MinTerms {
		return Fingerprint{}, fmt.Errorf("fingerprint of %d terms: %w", len(seq), tabl.ErrInsufficientTerms)
	}
	parts := make([]string, tabl.MinTerms)
	for i := 0; i < tabl.MinTerms; i++ {
		if seq[i].Sign() < 0 {
			parts[i] = seq[i].String()[1:]
		} else {
			parts[i] = seq[i].String()
		}
	}
	return Fingerprint{
		Hash:  Hash(strings.Join(parts, "")),
		Terms: truncate(strings.Join(parts, ","), MaxStrLen),
	}, nil
}

// Hash returns the 64-bit FNV-1a hash of s as fixed-width hex.
func Hash(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))
	return fmt.Sprintf("%016x", h.Sum64())
}

// SeqToString renders at most maxterms terms of seq, separated by sep,
// stopping early once the output would exceed maxchars. With absval the
// terms are rendered without sign.
func SeqToString(seq tabl.Seq, maxchars, maxterms int, sep string, absval bool) string {
	var b strings.Builder
	count := 0
	for _, v := range seq {
		if count == maxterms {
			break
		}
		s := v.String()
		if absval && strings.HasPrefix(s, "-") {
			s = s[1:]
		}
		if b.Len() > 0 {
			s = sep + s
		}
		if b.Len()+len(s) > maxchars {
			break
		}
		b.WriteString(s)
		count++
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
