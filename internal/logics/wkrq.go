package logics

import (
	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// Ferguson's wKrQ: weak Kleene propositional base {t,f,e} plus the
// epistemic-reading sign layer {T,F,M,N} (T=determinately true, F=determinately
// false, M="not false" i.e. t-or-e, N="not true" i.e. f-or-e), carrying
// Ferguson 2021 restricted quantifiers over a growing constant domain. The
// propositional rules follow the same α/β pattern as the three-valued
// weak Kleene case split, widened from {T,F,U} to {T,F,M,N}. Quantifier
// rules assign γ to any rule whose instantiation must repeat for every
// domain constant as the domain grows, and δ to rules that introduce one
// fresh witness constant once. A literal single-fresh-constant rendering
// of the universal rules would never reach a constant introduced by a
// sibling branch (e.g. "tweety"), so they must be γ, not δ.
func init() {
	logic.RegisterBuiltin(func(reg *logic.Registry) {
		_ = reg.Register(config.LogicWKrQ, newWKrQPlugin(), "wkrq", "restricted-quantifier")
	})
}

func newWKrQPlugin() *logic.Plugin {
	conditions := map[sign.Sign]map[truth.Value]struct{}{
		sign.Sign(config.SignT): {"t": {}},
		sign.Sign(config.SignF): {"f": {}},
		sign.Sign(config.SignM): {"t": {}, "e": {}},
		sign.Sign(config.SignN): {"f": {}, "e": {}},
	}
	signs := sign.System{
		Signs:           []sign.Sign{sign.Sign(config.SignT), sign.Sign(config.SignF), sign.Sign(config.SignM), sign.Sign(config.SignN)},
		TruthConditions: conditions,
		ContradictoryFn: func(a, b sign.Sign) bool {
			return len(sign.Intersect(conditions[a], conditions[b])) == 0
		},
	}

	ts := truth.System{
		Values:     []truth.Value{"t", "f", "e"},
		Designated: map[truth.Value]bool{"t": true},
		Ops: map[string]truth.Op{
			"~": func(a ...truth.Value) truth.Value {
				switch a[0] {
				case "t":
					return "f"
				case "f":
					return "t"
				default:
					return "e"
				}
			},
			"&": wk3Conjunction,
			"|": func(a ...truth.Value) truth.Value {
				if a[0] == "e" || a[1] == "e" {
					return "e"
				}
				if a[0] == "t" || a[1] == "t" {
					return "t"
				}
				return "f"
			},
			"->": func(a ...truth.Value) truth.Value {
				if a[0] == "e" || a[1] == "e" {
					return "e"
				}
				if a[0] == "t" && a[1] == "f" {
					return "f"
				}
				return "t"
			},
		},
	}

	return &logic.Plugin{
		Name:        config.LogicWKrQ,
		Connectives: propositionalConnectives(),
		Signs:       signs,
		Truth:       ts,
		SignNames: map[string]sign.Sign{
			config.SignT: sign.Sign(config.SignT),
			config.SignF: sign.Sign(config.SignF),
			config.SignM: sign.Sign(config.SignM),
			config.SignN: sign.Sign(config.SignN),
		},
		DefaultSignName: config.SignT,
		Rules:           wkrqRules(),
		FirstOrder:      true,
	}
}

var (
	restrictedExistential = rules.RestrictedQuantifier{Universal: false, BoundVar: "X", Restriction: "P", Matrix: "Q"}
	restrictedUniversal   = rules.RestrictedQuantifier{Universal: true, BoundVar: "X", Restriction: "P", Matrix: "Q"}
)

// pair is one β-branch asserting two signed formulas at once: signA holds
// of P and signB holds of Q. Used below to encode each (T/F/M/N, &/|/->)
// combination as a disjunction of conjunctive branches, derived directly
// from the weak Kleene truth tables (t,f,e) under T={t}, F={f}, M={t,e},
// N={f,e}: a branch set is exhaustive and each branch sound iff it
// enumerates exactly the (P,Q) truth-value pairs giving the conclusion
// sign's truth value, regrouped into sign-membership conjunctions.
type pair struct{ a, b string }

// lit names one conjunct of a branch: a sign applied to either P or Q.
// Needed (in place of pair) whenever a branch asserts two signs about the
// same operand, e.g. "P is e" rendered as M:P and N:P together.
type lit struct {
	onP  bool
	sign string
}

func wkrqRules() []rules.Rule {
	alphaNeg := func(name, signName, concSign string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Alpha, Priority: 1, SignName: signName, Pattern: negP,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, concSign, p(b))}}
			}}
	}
	alphaBinary := func(name, signName string, pat rules.Pattern, sp, sq string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Alpha, Priority: 1, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, sp, p(b)), rules.SF(env, sq, q(b))}}
			}}
	}
	singleBeta := func(name, signName string, pat rules.Pattern, s1, s2 string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Beta, Priority: 2, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, s1, p(b))},
					{rules.SF(env, s2, q(b))},
				}
			}}
	}
	pairedBeta := func(name, signName string, pat rules.Pattern, branches ...pair) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Beta, Priority: 2, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				out := make([][]signed.Formula, len(branches))
				for i, br := range branches {
					out[i] = []signed.Formula{rules.SF(env, br.a, p(b)), rules.SF(env, br.b, q(b))}
				}
				return out
			}}
	}
	onP := func(s string) lit { return lit{onP: true, sign: s} }
	onQ := func(s string) lit { return lit{onP: false, sign: s} }
	multiBeta := func(name, signName string, pat rules.Pattern, branches ...[]lit) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Beta, Priority: 2, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				out := make([][]signed.Formula, len(branches))
				for i, br := range branches {
					sfs := make([]signed.Formula, len(br))
					for j, l := range br {
						if l.onP {
							sfs[j] = rules.SF(env, l.sign, p(b))
						} else {
							sfs[j] = rules.SF(env, l.sign, q(b))
						}
					}
					out[i] = sfs
				}
				return out
			}}
	}

	propositional := []rules.Rule{
		alphaBinary("T-Conjunction", config.SignT, conjPQ, config.SignT, config.SignT),
		pairedBeta("F-Conjunction", config.SignF, conjPQ,
			pair{config.SignT, config.SignF}, pair{config.SignF, config.SignT}, pair{config.SignF, config.SignF}),
		multiBeta("M-Conjunction", config.SignM, conjPQ,
			[]lit{onP(config.SignM), onP(config.SignN)},
			[]lit{onQ(config.SignM), onQ(config.SignN)},
			[]lit{onP(config.SignT), onQ(config.SignT)}),
		multiBeta("N-Conjunction", config.SignN, conjPQ,
			[]lit{onP(config.SignF)},
			[]lit{onQ(config.SignF)},
			[]lit{onP(config.SignM), onP(config.SignN)},
			[]lit{onQ(config.SignM), onQ(config.SignN)}),

		pairedBeta("T-Disjunction", config.SignT, disjPQ,
			pair{config.SignT, config.SignT}, pair{config.SignT, config.SignF}, pair{config.SignF, config.SignT}),
		alphaBinary("F-Disjunction", config.SignF, disjPQ, config.SignF, config.SignF),
		singleBeta("M-Disjunction", config.SignM, disjPQ, config.SignM, config.SignM),
		multiBeta("N-Disjunction", config.SignN, disjPQ,
			[]lit{onP(config.SignM), onP(config.SignN)},
			[]lit{onQ(config.SignM), onQ(config.SignN)},
			[]lit{onP(config.SignF), onQ(config.SignF)}),

		alphaNeg("T-Negation", config.SignT, config.SignF),
		alphaNeg("F-Negation", config.SignF, config.SignT),
		alphaNeg("M-Negation", config.SignM, config.SignN),
		alphaNeg("N-Negation", config.SignN, config.SignM),

		pairedBeta("T-Implication", config.SignT, implPQ,
			pair{config.SignT, config.SignT}, pair{config.SignF, config.SignT}, pair{config.SignF, config.SignF}),
		alphaBinary("F-Implication", config.SignF, implPQ, config.SignT, config.SignF),
		singleBeta("M-Implication", config.SignM, implPQ, config.SignN, config.SignM),
		multiBeta("N-Implication", config.SignN, implPQ,
			[]lit{onP(config.SignT), onQ(config.SignF)},
			[]lit{onP(config.SignM), onP(config.SignN)},
			[]lit{onQ(config.SignM), onQ(config.SignN)}),
	}

	return append(propositional, wkrqQuantifierRules()...)
}

// wkrqQuantifierRules instantiates [∀X P(X)]Q(X) / [∃X P(X)]Q(X) under a
// single domain constant taken from env.Constant (γ rules, engine-driven —
// see internal/tableau) or a freshly generated one (δ rules, applied once).
func wkrqQuantifierRules() []rules.Rule {
	instantiate := func(b rules.Bindings, c formula.Constant) (formula.Formula, formula.Formula) {
		env := map[string]formula.Term{b.Names["X"]: c}
		return formula.Substitute(b.Formulas["P"], env), formula.Substitute(b.Formulas["Q"], env)
	}

	return []rules.Rule{
		// T:[∃X P(X)]Q(X) -- one fresh witness, asserted meaningful
		{Name: "T-Existential", Kind: rules.Delta, Priority: 1, SignName: config.SignT, Pattern: restrictedExistential,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				c := env.FreshConstant()
				p, q := instantiate(b, c)
				return [][]signed.Formula{{rules.SF(env, config.SignT, p), rules.SF(env, config.SignT, q)}}
			}},
		// F:[∃X P(X)]Q(X) -- every domain constant must fail to witness it
		{Name: "F-Existential", Kind: rules.Gamma, Priority: 3, SignName: config.SignF, Pattern: restrictedExistential,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				p, q := instantiate(b, env.Constant)
				return [][]signed.Formula{
					{rules.SF(env, config.SignF, p)},
					{rules.SF(env, config.SignF, q)},
				}
			}},
		{Name: "M-Existential", Kind: rules.Delta, Priority: 1, SignName: config.SignM, Pattern: restrictedExistential,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				c := env.FreshConstant()
				p, q := instantiate(b, c)
				return [][]signed.Formula{{rules.SF(env, config.SignM, p), rules.SF(env, config.SignM, q)}}
			}},
		{Name: "N-Existential", Kind: rules.Gamma, Priority: 3, SignName: config.SignN, Pattern: restrictedExistential,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				p, q := instantiate(b, env.Constant)
				return [][]signed.Formula{
					{rules.SF(env, config.SignN, p)},
					{rules.SF(env, config.SignN, q)},
				}
			}},

		// T:[∀X P(X)]Q(X) -- re-instantiated for every constant in the domain
		{Name: "T-Universal", Kind: rules.Gamma, Priority: 3, SignName: config.SignT, Pattern: restrictedUniversal,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				p, q := instantiate(b, env.Constant)
				return [][]signed.Formula{
					{rules.SF(env, config.SignF, p)},
					{rules.SF(env, config.SignT, q)},
				}
			}},
		// F:[∀X P(X)]Q(X) -- one fresh counterexample constant suffices
		{Name: "F-Universal", Kind: rules.Delta, Priority: 1, SignName: config.SignF, Pattern: restrictedUniversal,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				c := env.FreshConstant()
				p, q := instantiate(b, c)
				return [][]signed.Formula{{rules.SF(env, config.SignT, p), rules.SF(env, config.SignF, q)}}
			}},
		{Name: "M-Universal", Kind: rules.Gamma, Priority: 3, SignName: config.SignM, Pattern: restrictedUniversal,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				p, q := instantiate(b, env.Constant)
				return [][]signed.Formula{{rules.SF(env, config.SignN, p), rules.SF(env, config.SignM, q)}}
			}},
		{Name: "N-Universal", Kind: rules.Gamma, Priority: 3, SignName: config.SignN, Pattern: restrictedUniversal,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				p, q := instantiate(b, env.Constant)
				return [][]signed.Formula{{rules.SF(env, config.SignT, p), rules.SF(env, config.SignN, q)}}
			}},
	}
}
