// Package sign implements the per-logic finite sign set: the signs
// themselves, a truth_conditions(sign) mapping, and a contradictory(a, b)
// predicate.
package sign

import "github.com/bradleypallen/tableaux-go/internal/truth"

// Sign is an opaque label drawn from a logic's finite sign set (T, F, U, M, N, B, ...).
type Sign string

// System is one logic's sign set, truth-condition mapping, and
// contradiction relation.
type System struct {
	Signs           []Sign
	TruthConditions map[Sign]map[truth.Value]struct{}
	// ContradictoryFn implements contradictory(sign_a, sign_b). Classical,
	// WK3 and the registered FDE plugin use "(T,F) contradict and nothing
	// else"; wKrQ treats two signs as contradictory when their
	// truth-condition sets are disjoint, so (T,N) and (F,M) also contradict
	// there. FDE's Policy type (internal/logics/fde.go) selects a stricter
	// variant that adds (T,N), without engine changes.
	ContradictoryFn func(a, b Sign) bool
}

// Contradictory reports whether a and b are a contradictory pair under s.
func (s System) Contradictory(a, b Sign) bool {
	return s.ContradictoryFn(a, b)
}

// Conditions returns the subset of truth values that satisfy sign.
func (s System) Conditions(sign Sign) map[truth.Value]struct{} {
	return s.TruthConditions[sign]
}

// Has reports whether sign is a member of this system's sign set.
func (s System) Has(sign Sign) bool {
	for _, candidate := range s.Signs {
		if candidate == sign {
			return true
		}
	}
	return false
}

// Intersect returns the intersection of the truth-condition sets for two
// signs applied to the same formula — used by model extraction when
// multiple signs constrain one atom.
func Intersect(a, b map[truth.Value]struct{}) map[truth.Value]struct{} {
	out := map[truth.Value]struct{}{}
	for v := range a {
		if _, ok := b[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}
