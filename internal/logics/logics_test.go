package logics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	_ "github.com/bradleypallen/tableaux-go/internal/logics"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/signed"
)

func TestRegistryListsAllFourLogics(t *testing.T) {
	names := logic.Global().List()
	require.Contains(t, names, config.LogicClassical)
	require.Contains(t, names, config.LogicWK3)
	require.Contains(t, names, config.LogicWKrQ)
	require.Contains(t, names, config.LogicFDE)
}

func TestAliasesResolveToSamePlugin(t *testing.T) {
	byName, err := logic.Global().Get(config.LogicClassical)
	require.NoError(t, err)
	byAlias, err := logic.Global().Get("cpl")
	require.NoError(t, err)
	require.Same(t, byName, byAlias)
}

func TestUnknownLogicIsAnError(t *testing.T) {
	_, err := logic.Global().Get("intuitionistic")
	require.Error(t, err)
}

func TestClassicalTAndFContradict(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicClassical)
	require.NoError(t, err)
	require.True(t, plugin.Signs.Contradictory(plugin.SignNames[config.SignT], plugin.SignNames[config.SignF]))
	require.False(t, plugin.Signs.Contradictory(plugin.SignNames[config.SignT], plugin.SignNames[config.SignT]))
}

func TestWK3UndesignatedNeverContradicts(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicWK3)
	require.NoError(t, err)
	u := plugin.SignNames[config.SignU]
	require.False(t, plugin.Signs.Contradictory(u, plugin.SignNames[config.SignT]))
	require.False(t, plugin.Signs.Contradictory(u, plugin.SignNames[config.SignF]))
}

func TestWK3StrictConjunctionTable(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicWK3)
	require.NoError(t, err)
	// f & e = e under the strict table.
	require.Equal(t, "e", string(plugin.Truth.Evaluate("&", "f", "e")))
	require.Equal(t, "e", string(plugin.Truth.Evaluate("&", "t", "e")))
	require.Equal(t, "f", string(plugin.Truth.Evaluate("&", "f", "t")))
}

func TestFDEHasNoDesignatedFalsum(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicFDE)
	require.NoError(t, err)
	require.True(t, plugin.Truth.Designated["t"])
	require.True(t, plugin.Truth.Designated["b"])
	require.False(t, plugin.Truth.Designated["f"])
	require.False(t, plugin.Truth.Designated["n"])
}

func TestFDEBothIsSelfNegating(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicFDE)
	require.NoError(t, err)
	require.Equal(t, "b", string(plugin.Truth.Evaluate("~", "b")))
	require.Equal(t, "n", string(plugin.Truth.Evaluate("~", "n")))
}

func TestWKrQSignsAreDisjointnessContradiction(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicWKrQ)
	require.NoError(t, err)
	m, n, tt, ff := plugin.SignNames[config.SignM], plugin.SignNames[config.SignN], plugin.SignNames[config.SignT], plugin.SignNames[config.SignF]
	require.False(t, plugin.Signs.Contradictory(m, n), "M and N share e, so they do not contradict")
	require.True(t, plugin.Signs.Contradictory(tt, ff))
	require.True(t, plugin.Signs.Contradictory(tt, n), "T excludes f-or-e, so it contradicts N")
	require.True(t, plugin.Signs.Contradictory(ff, m), "F excludes t-or-e, so it contradicts M")
	require.True(t, plugin.FirstOrder)
}

func TestClassicalConjunctionRuleApplication(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicClassical)
	require.NoError(t, err)

	p := formula.Atom{Name: "p"}
	q := formula.Atom{Name: "q"}
	conj, err := formula.NewCompound(plugin.Connectives["&"], []formula.Formula{p, q})
	require.NoError(t, err)

	env := plugin.RuleEnv(nil)
	var applied bool
	for _, r := range plugin.Rules {
		if r.Name != "T-Conjunction" {
			continue
		}
		branches, ok := r.TryApply(signed.Formula{Sign: plugin.SignNames[config.SignT], Formula: conj}, env)
		require.True(t, ok)
		require.Len(t, branches, 1)
		require.Len(t, branches[0], 2)
		applied = true
	}
	require.True(t, applied, "T-Conjunction rule must exist")
}

func TestFergusonSyllogismRulesInstantiateAgainstSuppliedConstant(t *testing.T) {
	plugin, err := logic.Global().Get(config.LogicWKrQ)
	require.NoError(t, err)

	bird := func(c formula.Term) formula.Predicate { return formula.Predicate{Name: "Bird", Terms: []formula.Term{c}} }
	flies := func(c formula.Term) formula.Predicate { return formula.Predicate{Name: "Flies", Terms: []formula.Term{c}} }
	universal := formula.RestrictedUniversal{
		Var:         "X",
		Restriction: bird(formula.Variable{Name: "X"}),
		Matrix:      flies(formula.Variable{Name: "X"}),
	}

	tweety := formula.Constant{Name: "tweety"}
	env := plugin.RuleEnv(nil)
	env.Constant = tweety

	var ran bool
	for _, r := range plugin.Rules {
		if r.Name != "T-Universal" {
			continue
		}
		branches, ok := r.TryApply(signed.Formula{Sign: plugin.SignNames[config.SignT], Formula: universal}, env)
		require.True(t, ok)
		require.Len(t, branches, 2)
		require.Len(t, branches[0], 1)
		require.Equal(t, "F", string(branches[0][0].Sign))
		require.Equal(t, bird(tweety).String(), branches[0][0].Formula.String())
		require.Equal(t, flies(tweety).String(), branches[1][0].Formula.String())
		ran = true
	}
	require.True(t, ran)

	// The Bindings carry the surface variable name ("X"), so running the
	// same rule again against a different constant must not collide.
	_, ok := rules.Match(rules.RestrictedQuantifier{Universal: true, BoundVar: "X", Restriction: "P", Matrix: "Q"}, universal)
	require.True(t, ok)
}
