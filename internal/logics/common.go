// Package logics supplies the concrete logic plugins: classical, WK3,
// wKrQ, FDE. Each file's init() calls logic.RegisterBuiltin, so blank-
// importing this package is enough to make every logic available through
// logic.Global() without any other component needing a change.
package logics

import (
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/rules"
)

// Shared pattern variables used across every propositional rule set.
var (
	varP = rules.Var{Name: "P"}
	varQ = rules.Var{Name: "Q"}

	negP    = rules.Neg{Sub: varP}
	conjPQ  = rules.Binary{Symbol: "&", Left: varP, Right: varQ}
	disjPQ  = rules.Binary{Symbol: "|", Left: varP, Right: varQ}
	implPQ  = rules.Binary{Symbol: "->", Left: varP, Right: varQ}
)

// propositionalConnectives is shared by all four shipped logics, which
// differ only in signs and truth conditions, including the "'" alias for
// "&".
func propositionalConnectives() map[string]formula.ConnectiveSpec {
	return formula.DefaultConnectives()
}

func p(bindings rules.Bindings) formula.Formula { return bindings.Formulas["P"] }
func q(bindings rules.Bindings) formula.Formula { return bindings.Formulas["Q"] }
