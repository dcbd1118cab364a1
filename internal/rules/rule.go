package rules

import (
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
)

// Kind is Smullyan's unified-notation rule kind: α is non-branching, β is
// branching; γ/δ are reserved for quantifier rules.
type Kind int

const (
	Alpha Kind = iota
	Beta
	Gamma
	Delta
)

// Ordinal breaks priority ties between rules of different kinds at equal
// Priority: rules are ordered by (rule.priority, rule.kind_ordinal).
func (k Kind) Ordinal() int { return int(k) }

// Env supplies a rule's Apply closure with logic-specific resolution: the
// sign a rule names by its canonical letter (e.g. "T"), and fresh-constant
// generation for existential/universal instantiation.
type Env struct {
	ResolveSign   func(name string) sign.Sign
	FreshConstant func() formula.Constant
	// Constant is set by the tableau engine before invoking a γ-kind
	// rule's Apply for one particular domain constant; unused by α/β/δ
	// rules.
	Constant formula.Constant
}

// Rule is one declarative rule record: a pattern premise matched against a
// single signed formula, plus conclusion branches produced by Apply once
// Bindings are established.
type Rule struct {
	Name     string
	Kind     Kind
	Priority int
	SignName string // resolved to an actual sign.Sign via Env.ResolveSign
	Pattern  Pattern
	// Apply instantiates the rule's conclusion templates under bindings,
	// returning one list of signed formulas per resulting branch: exactly
	// one list for α-rules, two or more for β-rules.
	Apply func(bindings Bindings, env Env) [][]signed.Formula
}

// SF builds a signed.Formula by resolving signName through env, sparing
// every Apply closure from importing internal/sign directly.
func SF(env Env, signName string, f formula.Formula) signed.Formula {
	return signed.Formula{Sign: env.ResolveSign(signName), Formula: f}
}

// TryApply attempts to apply r to sf. ok is false if sf's sign does not
// match r.SignName (resolved via env) or if r's pattern does not match
// sf.Formula. Matching never mutates sf; fresh-constant generation (when
// the rule needs one) happens inside Apply via env.
func (r Rule) TryApply(sf signed.Formula, env Env) ([][]signed.Formula, bool) {
	wantSign := env.ResolveSign(r.SignName)
	if sf.Sign != wantSign {
		return nil, false
	}
	bindings, ok := Match(r.Pattern, sf.Formula)
	if !ok {
		return nil, false
	}
	return r.Apply(bindings, env), true
}
