package traits

import (
	"errors"
	"fmt"

	"github.com/PeterLuschny/tablInspector/pkg/fingerprint"
	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// Transform names a base transform a triangle is evaluated under before
// the registry is applied to it.
type Transform int

const (
	Standard Transform = iota
	Alternate
	Reversed
	ReversedInverse
	Inverse
	InverseReversed
)

// Transforms lists the base transforms in evaluation order.
var Transforms = []Transform{
	Standard, Alternate, Reversed, ReversedInverse, Inverse, InverseReversed,
}

func (tf Transform) String() string {
	switch tf {
	case Standard:
		return "Std"
	case Alternate:
		return "Alt"
	case Reversed:
		return "Rev"
	case ReversedInverse:
		return "RevInv"
	case Inverse:
		return "Inv"
	case InverseReversed:
		return "InvRev"
	}
	return fmt.Sprintf("Transform(%d)", int(tf))
}

// Result is the unit of output of an exploration: one sequence per
// (table, transform, trait) triple. Err is set when the trait failed
// structurally for this pair; Seq is nil then.
type Result struct {
	Table     string
	Transform Transform
	Trait     string
	Seq       tabl.Seq
	Err       error
}

// transformTable builds the table a transform evaluates. Inverse-based
// transforms are materialized up to DiagSize rows, the bound every
// registered trait stays within.
func transformTable(t *tabl.Table, tf Transform) (*tabl.Table, error) {
	switch tf {
	case Standard:
		return t, nil
	case Alternate:
		return tabl.AltTable(t), nil
	case Reversed:
		return tabl.RevTable(t), nil
	case ReversedInverse:
		return tabl.RevInvTable(t, tabl.DiagSize)
	case Inverse:
		return tabl.InvTable(t, tabl.DiagSize)
	case InverseReversed:
		return tabl.InvRevTable(t, tabl.DiagSize)
	}
	return nil, fmt.Errorf("unknown transform %d", int(tf))
}

// Explore applies the full registry to t under every base transform.
// A transform whose flattened fingerprint equals one already processed is
// skipped, so palindromic or self-inverse triangles are not reported
// twice. Transforms without an integer inverse are skipped silently.
// Traits that are not applicable are omitted; traits that fail
// structurally are reported in their Result and do not abort the run.
//
// size is the number of rows the caller has budgeted for the scan and
// must be at least MinRows.
func Explore(t *tabl.Table, size int) ([]Result, error) {
	if size < tabl.MinRows {
		return nil, fmt.Errorf("%s: %d rows: %w", t.Name(), size, tabl.ErrInsufficientRows)
	}
	var results []Result
	seen := make(map[string]bool)
	for _, tf := range Transforms {
		tt, err := transformTable(t, tf)
		if err != nil {
			if errors.Is(err, tabl.ErrNonIntegerInverse) {
				continue
			}
			return nil, err
		}
		fp, err := fingerprint.New(tt.Flat(tabl.DiagSize))
		if err != nil {
			return nil, err
		}
		if seen[fp.Hash] {
			continue
		}
		seen[fp.Hash] = true
		for _, tr := range Registry {
			seq, err := ApplyChecked(tr, tt)
			if err != nil {
				results = append(results, Result{Table: t.Name(), Transform: tf, Trait: tr.Name, Err: err})
				continue
			}
			if seq == nil {
				continue
			}
			results = append(results, Result{Table: t.Name(), Transform: tf, Trait: tr.Name, Seq: seq})
		}
	}
	return results, nil
}
