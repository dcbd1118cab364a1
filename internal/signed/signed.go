// Package signed defines the signed formula, the fundamental unit of
// tableau reasoning: a (sign, formula) pair, equal iff sign and formula
// are equal.
package signed

import (
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/sign"
)

// Formula pairs a Sign with a formula.Formula.
type Formula struct {
	Sign    sign.Sign
	Formula formula.Formula
}

// Equals reports whether two signed formulas are equal (equal sign, equal
// formula by structural equality).
func Equals(a, b Formula) bool {
	return a.Sign == b.Sign && formula.Equals(a.Formula, b.Formula)
}

// String renders the printed form "⟨sign⟩:⟨formula⟩", e.g. "T:(p & q)",
// "U:~p", "M:Bird(tweety)".
func (f Formula) String() string {
	return string(f.Sign) + ":" + f.Formula.String()
}
