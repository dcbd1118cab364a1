// Package logic implements the logic plugin and registry: a plugin binds
// connectives + sign system + truth system + rule set under a name, and
// the registry is a process-wide, lazily initialized mapping from
// canonical names and aliases to plugins.
package logic

import (
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// Plugin binds everything one logic needs.
type Plugin struct {
	Name        string
	Connectives map[string]formula.ConnectiveSpec
	Signs       sign.System
	Truth       truth.System
	Rules       []rules.Rule
	// SignNames maps a rule's canonical sign letter (e.g. "T") to this
	// logic's actual sign.Sign value: the same "T" becomes a classical T, a
	// three-valued T, or a four-valued T as appropriate.
	SignNames map[string]sign.Sign
	// DefaultSignName names the sign used when callers ask to check
	// satisfiability without specifying one explicitly (api.Satisfiable).
	DefaultSignName string
	// FirstOrder marks logics with restricted-quantifier rules (wKrQ),
	// enabling γ/δ handling and the domain/fresh-constant bookkeeping in
	// internal/tableau.
	FirstOrder bool
}

// ResolveSign implements rules.Env's ResolveSign for this plugin.
func (p *Plugin) ResolveSign(name string) sign.Sign {
	return p.SignNames[name]
}

// RuleEnv returns a rules.Env bound to this plugin plus a fresh-constant
// generator, used by the tableau engine when applying rules on a branch.
func (p *Plugin) RuleEnv(freshConstant func() formula.Constant) rules.Env {
	return rules.Env{ResolveSign: p.ResolveSign, FreshConstant: freshConstant}
}
