package tables

import (
	"strings"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

// All lists the built-in triangles in alphabetical order.
var All = []*tabl.Table{
	Binomial,
	BinomialInv,
	Catalan,
	DyckPathsInv,
	Eulerian,
	FallingFactorial,
	Fubini,
	Lah,
	Leibniz,
	LucasInv,
	MotzkinInv,
	Narayana2,
	Powers,
	RisingFactorial,
	SchroederInv,
	StirlingCycle,
	StirlingCycleB,
	StirlingSet,
}

// Lookup returns the built-in triangle with the given name. Matching is
// case-insensitive. Returns tabl.ErrTableNotFound for unknown names.
func Lookup(name string) (*tabl.Table, error) {
	for _, t := range All {
		if strings.EqualFold(t.Name(), name) {
			return t, nil
		}
	}
	return nil, tabl.ErrTableNotFound
}

// Names returns the names of all built-in triangles.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name()
	}
	return names
}
