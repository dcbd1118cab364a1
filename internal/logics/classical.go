package logics

import (
	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// Classical two-valued signs {T,F} and standard α/β rules: T/F negation,
// conjunction, disjunction, implication.
func init() {
	logic.RegisterBuiltin(func(reg *logic.Registry) {
		_ = reg.Register(config.LogicClassical, newClassicalPlugin(), "cpl", "propositional")
	})
}

func newClassicalPlugin() *logic.Plugin {
	signs := sign.System{
		Signs: []sign.Sign{sign.Sign(config.SignT), sign.Sign(config.SignF)},
		TruthConditions: map[sign.Sign]map[truth.Value]struct{}{
			sign.Sign(config.SignT): {"t": {}},
			sign.Sign(config.SignF): {"f": {}},
		},
		ContradictoryFn: classicalContradictory,
	}

	ts := truth.System{
		Values:     []truth.Value{"t", "f"},
		Designated: map[truth.Value]bool{"t": true},
		Ops: map[string]truth.Op{
			"~": func(a ...truth.Value) truth.Value { return flip(a[0]) },
			"&": func(a ...truth.Value) truth.Value {
				if a[0] == "t" && a[1] == "t" {
					return "t"
				}
				return "f"
			},
			"|": func(a ...truth.Value) truth.Value {
				if a[0] == "t" || a[1] == "t" {
					return "t"
				}
				return "f"
			},
			"->": func(a ...truth.Value) truth.Value {
				if a[0] == "t" && a[1] == "f" {
					return "f"
				}
				return "t"
			},
		},
	}

	return &logic.Plugin{
		Name:        config.LogicClassical,
		Connectives: propositionalConnectives(),
		Signs:       signs,
		Truth:       ts,
		SignNames: map[string]sign.Sign{
			config.SignT: sign.Sign(config.SignT),
			config.SignF: sign.Sign(config.SignF),
		},
		DefaultSignName: config.SignT,
		Rules:           classicalRules(),
	}
}

func classicalContradictory(a, b sign.Sign) bool {
	return (a == sign.Sign(config.SignT) && b == sign.Sign(config.SignF)) ||
		(a == sign.Sign(config.SignF) && b == sign.Sign(config.SignT))
}

func flip(v truth.Value) truth.Value {
	if v == "t" {
		return "f"
	}
	return "t"
}

func classicalRules() []rules.Rule {
	return []rules.Rule{
		{Name: "T-Negation", Kind: rules.Alpha, Priority: 1, SignName: config.SignT, Pattern: negP,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignF, p(b))}}
			}},
		{Name: "F-Negation", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: negP,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b))}}
			}},
		{Name: "T-Conjunction", Kind: rules.Alpha, Priority: 1, SignName: config.SignT, Pattern: conjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b)), rules.SF(env, config.SignT, q(b))}}
			}},
		{Name: "F-Conjunction", Kind: rules.Beta, Priority: 2, SignName: config.SignF, Pattern: conjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, config.SignF, p(b))},
					{rules.SF(env, config.SignF, q(b))},
				}
			}},
		{Name: "F-Disjunction", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: disjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignF, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		{Name: "T-Disjunction", Kind: rules.Beta, Priority: 2, SignName: config.SignT, Pattern: disjPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, config.SignT, p(b))},
					{rules.SF(env, config.SignT, q(b))},
				}
			}},
		{Name: "F-Implication", Kind: rules.Alpha, Priority: 1, SignName: config.SignF, Pattern: implPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{{rules.SF(env, config.SignT, p(b)), rules.SF(env, config.SignF, q(b))}}
			}},
		{Name: "T-Implication", Kind: rules.Beta, Priority: 2, SignName: config.SignT, Pattern: implPQ,
			Apply: func(b rules.Bindings, env rules.Env) [][]signed.Formula {
				return [][]signed.Formula{
					{rules.SF(env, config.SignF, p(b))},
					{rules.SF(env, config.SignT, q(b))},
				}
			}},
	}
}
