package formula

import "hash/fnv"

// Equals reports structural equality, used to key the contradiction index.
func Equals(a, b Formula) bool {
	switch av := a.(type) {
	case Atom:
		bv, ok := b.(Atom)
		return ok && av.Name == bv.Name
	case Predicate:
		bv, ok := b.(Predicate)
		if !ok || av.Name != bv.Name || len(av.Terms) != len(bv.Terms) {
			return false
		}
		for i := range av.Terms {
			if !TermEquals(av.Terms[i], bv.Terms[i]) {
				return false
			}
		}
		return true
	case Compound:
		bv, ok := b.(Compound)
		if !ok || av.Connective.Symbol != bv.Connective.Symbol || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equals(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case RestrictedExistential:
		bv, ok := b.(RestrictedExistential)
		return ok && av.Var == bv.Var && Equals(av.Restriction, bv.Restriction) && Equals(av.Matrix, bv.Matrix)
	case RestrictedUniversal:
		bv, ok := b.(RestrictedUniversal)
		return ok && av.Var == bv.Var && Equals(av.Restriction, bv.Restriction) && Equals(av.Matrix, bv.Matrix)
	default:
		return false
	}
}

// Hash computes a structural hash (FNV-1a over the printed form). The
// branch's per-formula contradiction index does not use it; that index is
// keyed by the printed form itself.
func Hash(f Formula) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(f.String()))
	return h.Sum64()
}
