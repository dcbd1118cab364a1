// Package rules implements the declarative rule system: pattern premises
// matched against signed formulas, producing branch-conclusion sets.
// Patterns are Go values built once when a logic plugin registers its rule
// set (internal/logics/*.go), not strings parsed at match time.
package rules

import (
	"github.com/bradleypallen/tableaux-go/internal/formula"
)

// Bindings is the environment built while matching a Pattern against a
// Formula: a mapping from pattern formula-variables to the formulas they
// matched, plus a mapping from pattern name-variables (a quantifier's bound
// variable) to the variable name actually bound in the branch formula.
type Bindings struct {
	Formulas map[string]formula.Formula
	Names    map[string]string
}

func newBindings() Bindings {
	return Bindings{Formulas: map[string]formula.Formula{}, Names: map[string]string{}}
}

// bindFormula records name -> f, failing if name is already bound to a
// different formula (conflicting bindings abort the match).
func (b Bindings) bindFormula(name string, f formula.Formula) bool {
	if existing, ok := b.Formulas[name]; ok {
		return formula.Equals(existing, f)
	}
	b.Formulas[name] = f
	return true
}

func (b Bindings) bindName(name string, value string) bool {
	if existing, ok := b.Names[name]; ok {
		return existing == value
	}
	b.Names[name] = value
	return true
}

// Pattern is a compact match tree node: Var (a single uppercase letter
// binds a formula), Neg (~P), Binary (P & Q, P | Q, P -> Q), or a
// restricted quantifier template ([∀X P(X)]Q(X) / [∃X P(X)]Q(X)).
type Pattern interface {
	match(f formula.Formula, b Bindings) (Bindings, bool)
}

// Var matches any formula and binds it to Name.
type Var struct {
	Name string
}

func (v Var) match(f formula.Formula, b Bindings) (Bindings, bool) {
	if !b.bindFormula(v.Name, f) {
		return b, false
	}
	return b, true
}

// Neg matches "~P": a unary Compound whose canonical connective symbol is
// "~", recursing Sub against its single argument.
type Neg struct {
	Sub Pattern
}

func (n Neg) match(f formula.Formula, b Bindings) (Bindings, bool) {
	c, ok := f.(formula.Compound)
	if !ok || formula.CanonicalSymbol(c.Connective.Symbol) != "~" || len(c.Args) != 1 {
		return b, false
	}
	return n.Sub.match(c.Args[0], b)
}

// Binary matches a binary Compound whose canonical connective symbol equals
// Symbol ("&", "|", or "->"), recursing Left/Right against its two
// arguments. Symbol aliasing (e.g. "&" / "'") is resolved via
// formula.CanonicalSymbol so either alias matches the same pattern.
type Binary struct {
	Symbol      string
	Left, Right Pattern
}

func (bi Binary) match(f formula.Formula, b Bindings) (Bindings, bool) {
	c, ok := f.(formula.Compound)
	if !ok || formula.CanonicalSymbol(c.Connective.Symbol) != bi.Symbol || len(c.Args) != 2 {
		return b, false
	}
	b, ok = bi.Left.match(c.Args[0], b)
	if !ok {
		return b, false
	}
	return bi.Right.match(c.Args[1], b)
}

// RestrictedQuantifier matches [∀X P(X)]Q(X) or [∃X P(X)]Q(X), binding
// BoundVar to the quantifier's variable name and Restriction/Matrix to the
// (open) restriction and matrix formulas.
type RestrictedQuantifier struct {
	Universal   bool // true = ∀, false = ∃
	BoundVar    string
	Restriction string
	Matrix      string
}

func (q RestrictedQuantifier) match(f formula.Formula, b Bindings) (Bindings, bool) {
	if q.Universal {
		u, ok := f.(formula.RestrictedUniversal)
		if !ok {
			return b, false
		}
		return bindQuantifier(q, u.Var, u.Restriction, u.Matrix, b)
	}
	e, ok := f.(formula.RestrictedExistential)
	if !ok {
		return b, false
	}
	return bindQuantifier(q, e.Var, e.Restriction, e.Matrix, b)
}

func bindQuantifier(q RestrictedQuantifier, varName string, restriction, matrix formula.Formula, b Bindings) (Bindings, bool) {
	if !b.bindName(q.BoundVar, varName) {
		return b, false
	}
	if !b.bindFormula(q.Restriction, restriction) {
		return b, false
	}
	if !b.bindFormula(q.Matrix, matrix) {
		return b, false
	}
	return b, true
}

// Match runs p against f, returning fresh Bindings on success.
func Match(p Pattern, f formula.Formula) (Bindings, bool) {
	return p.match(f, newBindings())
}
