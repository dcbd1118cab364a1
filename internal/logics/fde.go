package logics

import (
	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// First-Degree Entailment {T,F,B,N}, designated {t,b}. Contradiction
// detection at the sign level defaults to "(T,F) only" — paraconsistency
// follows from B (both) coexisting with T/F assertions on the same
// formula without closing the branch. The Policy type selects, at plugin
// construction, a stricter variant that also closes on (T,N), without
// touching the engine. Basic FDE has
// no native implication connective; this plugin derives one as ¬A ∨ B
// (material conditional over the Belnap lattice) so the shared parser
// grammar still accepts "->" under FDE, with sign rules following
// directly from ~'s involution (T:~A ≡ F:A, B:~A ≡ B:A, N:~A ≡ N:A).
func init() {
	logic.RegisterBuiltin(func(reg *logic.Registry) {
		_ = reg.Register(config.LogicFDE, newFDEPlugin(), "first-degree-entailment")
	})
}

// Policy controls how strictly FDE detects sign-level contradiction.
type Policy int

const (
	// PolicyWeak is the shipped default: only (T,F) contradict.
	PolicyWeak Policy = iota
	// PolicyStrict additionally treats (T,N) as contradictory, a common
	// textbook-alternative presentation of FDE.
	PolicyStrict
)

func newFDEPlugin() *logic.Plugin {
	return newFDEPluginWithPolicy(PolicyWeak)
}

// newFDEPluginWithPolicy lets tests exercise the alternative policy
// without mutating the process-wide registry.
func newFDEPluginWithPolicy(policy Policy) *logic.Plugin {
	contradictory := classicalContradictory
	if policy == PolicyStrict {
		contradictory = func(a, b sign.Sign) bool {
			if classicalContradictory(a, b) {
				return true
			}
			tn := func(x, y sign.Sign) bool {
				return x == sign.Sign(config.SignT) && y == sign.Sign(config.SignN)
			}
			return tn(a, b) || tn(b, a)
		}
	}

	signs := sign.System{
		Signs: []sign.Sign{sign.Sign(config.SignT), sign.Sign(config.SignF), sign.Sign(config.SignB), sign.Sign(config.SignN)},
		TruthConditions: map[sign.Sign]map[truth.Value]struct{}{
			sign.Sign(config.SignT): {"t": {}},
			sign.Sign(config.SignF): {"f": {}},
			sign.Sign(config.SignB): {"b": {}},
			sign.Sign(config.SignN): {"n": {}},
		},
		ContradictoryFn: contradictory,
	}

	ts := truth.System{
		Values:     []truth.Value{"t", "f", "b", "n"},
		Designated: map[truth.Value]bool{"t": true, "b": true},
		Ops: map[string]truth.Op{
			"~": fdeNegate,
			"&": fdeAnd,
			"|": fdeOr,
			"->": func(a ...truth.Value) truth.Value {
				return fdeOr(fdeNegate(a[0]), a[1])
			},
		},
	}

	return &logic.Plugin{
		Name:        config.LogicFDE,
		Connectives: propositionalConnectives(),
		Signs:       signs,
		Truth:       ts,
		SignNames: map[string]sign.Sign{
			config.SignT: sign.Sign(config.SignT),
			config.SignF: sign.Sign(config.SignF),
			config.SignB: sign.Sign(config.SignB),
			config.SignN: sign.Sign(config.SignN),
		},
		DefaultSignName: config.SignT,
		Rules:           fdeRules(),
	}
}

func fdeNegate(a ...truth.Value) truth.Value {
	switch a[0] {
	case "t":
		return "f"
	case "f":
		return "t"
	default:
		return a[0] // b -> b, n -> n
	}
}

// fdeAnd is the Belnap lattice meet: f is bottom (dominates), t is top
// among {t,b,n} when paired with itself, b/n combine to f (no shared
// designated-and-classical value), matching standard FDE presentations.
func fdeAnd(a ...truth.Value) truth.Value {
	x, y := a[0], a[1]
	if x == "f" || y == "f" {
		return "f"
	}
	if x == "t" && y == "t" {
		return "t"
	}
	if x == "b" && y == "b" {
		return "b"
	}
	if (x == "t" && y == "b") || (x == "b" && y == "t") {
		return "b"
	}
	if (x == "b" && y == "n") || (x == "n" && y == "b") {
		return "f"
	}
	return "n"
}

func fdeOr(a ...truth.Value) truth.Value {
	x, y := a[0], a[1]
	if x == "t" || y == "t" {
		return "t"
	}
	if x == "f" && y == "f" {
		return "f"
	}
	if x == "b" && y == "b" {
		return "b"
	}
	if (x == "b" && y == "n") || (x == "n" && y == "b") {
		return "t"
	}
	if x == "b" || y == "b" {
		return "b"
	}
	return "n"
}

func fdeRules() []rules.Rule {
	alphaNeg := func(name, signName, concSign string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Alpha, Priority: 1, SignName: signName, Pattern: negP,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, concSign, p(b))}}
			}}
	}
	threeWayBeta := func(name, signName string, pat rules.Pattern, s1a, s1b, s2a, s2b, s3a, s3b string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Beta, Priority: 2, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, s1a, p(b)), rules.SF(env, s1b, q(b))},
					{rules.SF(env, s2a, p(b)), rules.SF(env, s2b, q(b))},
					{rules.SF(env, s3a, p(b)), rules.SF(env, s3b, q(b))},
				}
			}}
	}
	twoWayBeta := func(name, signName string, pat rules.Pattern, s1, s2 string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Beta, Priority: 2, SignName: signName, Pattern: pat,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, s1, p(b))},
					{rules.SF(env, s2, q(b))},
				}
			}}
	}

	return []rules.Rule{
		{Name: "T-Conjunction", Kind: rules.Alpha, Priority: 1, SignName: config.SignT, Pattern: conjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b)), rules.SF(env, config.SignT, q(b))}}
			}},
		twoWayBeta("F-Conjunction", config.SignF, conjPQ, config.SignF, config.SignF),
		threeWayBeta("B-Conjunction", config.SignB, conjPQ,
			config.SignB, config.SignT, config.SignT, config.SignB, config.SignB, config.SignB),
		twoWayBeta("N-Conjunction", config.SignN, conjPQ, config.SignN, config.SignN),

		twoWayBeta("T-Disjunction", config.SignT, disjPQ, config.SignT, config.SignT),
		{Name: "F-Disjunction", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: disjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignF, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		threeWayBeta("B-Disjunction", config.SignB, disjPQ,
			config.SignB, config.SignF, config.SignF, config.SignB, config.SignB, config.SignB),
		twoWayBeta("N-Disjunction", config.SignN, disjPQ, config.SignN, config.SignN),

		alphaNeg("T-Negation", config.SignT, config.SignF),
		alphaNeg("F-Negation", config.SignF, config.SignT),
		alphaNeg("B-Negation", config.SignB, config.SignB),
		alphaNeg("N-Negation", config.SignN, config.SignN),

		// Implication, derived as ¬A ∨ B (see package doc comment).
		twoWayBeta("T-Implication", config.SignT, implPQ, config.SignF, config.SignT),
		{Name: "F-Implication", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: implPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		threeWayBeta("B-Implication", config.SignB, implPQ,
			config.SignB, config.SignF, config.SignT, config.SignB, config.SignB, config.SignB),
		twoWayBeta("N-Implication", config.SignN, implPQ, config.SignN, config.SignN),
	}
}
