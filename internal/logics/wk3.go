package logics

import (
	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// Weak Kleene three-valued logic {T,F,U}: only (T,F) contradict — U never
// contradicts anything. The conjunction truth table follows the strict
// convention: any operand equal to e forces the result to e, including
// f ∧ e = e.
func init() {
	logic.RegisterBuiltin(func(reg *logic.Registry) {
		_ = reg.Register(config.LogicWK3, newWK3Plugin(), "weak-kleene", "kleene")
	})
}

func newWK3Plugin() *logic.Plugin {
	signs := sign.System{
		Signs: []sign.Sign{sign.Sign(config.SignT), sign.Sign(config.SignF), sign.Sign(config.SignU)},
		TruthConditions: map[sign.Sign]map[truth.Value]struct{}{
			sign.Sign(config.SignT): {"t": {}},
			sign.Sign(config.SignF): {"f": {}},
			sign.Sign(config.SignU): {"e": {}},
		},
		ContradictoryFn: classicalContradictory, // (T,F) only; U is never contradictory
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
		Name:        config.LogicWK3,
		Connectives: propositionalConnectives(),
		Signs:       signs,
		Truth:       ts,
		SignNames: map[string]sign.Sign{
			config.SignT: sign.Sign(config.SignT),
			config.SignF: sign.Sign(config.SignF),
			config.SignU: sign.Sign(config.SignU),
		},
		DefaultSignName: config.SignT,
		Rules:           wk3Rules(),
	}
}

// wk3Conjunction implements the strict weak Kleene table: any e-valued
// operand forces e, including f ∧ e = e.
func wk3Conjunction(a ...truth.Value) truth.Value {
	if a[0] == "e" || a[1] == "e" {
		return "e"
	}
	if a[0] == "t" && a[1] == "t" {
		return "t"
	}
	return "f"
}

func wk3Rules() []rules.Rule {
	alphaNeg := func(name, signName, concSign string) rules.Rule {
		return rules.Rule{Name: name, Kind: rules.Alpha, Priority: 1, SignName: signName, Pattern: negP,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, concSign, p(b))}}
			}}
	}
	betaTwo := func(name, signName string, pat rules.Pattern, s1, s2 string) rules.Rule {
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
		{Name: "F-Conjunction", Kind: rules.Beta, Priority: 2, SignName: config.SignF, Pattern: conjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, config.SignF, p(b))},
					{rules.SF(env, config.SignF, q(b))},
					{rules.SF(env, config.SignU, p(b))},
					{rules.SF(env, config.SignU, q(b))},
				}
			}},
		betaTwo("U-Conjunction", config.SignU, conjPQ, config.SignU, config.SignU),
		betaTwo("T-Disjunction", config.SignT, disjPQ, config.SignT, config.SignT),
		{Name: "F-Disjunction", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: disjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignF, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		betaTwo("U-Disjunction", config.SignU, disjPQ, config.SignU, config.SignU),
		alphaNeg("T-Negation", config.SignT, config.SignF),
		alphaNeg("F-Negation", config.SignF, config.SignT),
		alphaNeg("U-Negation", config.SignU, config.SignU),
		betaTwo("T-Implication", config.SignT, implPQ, config.SignF, config.SignT),
		{Name: "F-Implication", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: implPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		betaTwo("U-Implication", config.SignU, implPQ, config.SignU, config.SignU),
	}
}
