package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/pkg/api"
)

func TestParseAndSatisfiableTautology(t *testing.T) {
	f, err := api.ParseFormula(config.LogicClassical, "p | ~p")
	require.NoError(t, err)

	sat, err := api.Satisfiable(config.LogicClassical, f, api.DefaultOptions())
	require.NoError(t, err)
	require.True(t, sat)

	valid, err := api.Valid(config.LogicClassical, f, api.DefaultOptions())
	require.NoError(t, err)
	require.True(t, valid)
}

func TestWK3ExcludedMiddleIsNotValid(t *testing.T) {
	f, err := api.ParseFormula(config.LogicWK3, "p | ~p")
	require.NoError(t, err)
	valid, err := api.Valid(config.LogicWK3, f, api.DefaultOptions())
	require.NoError(t, err)
	require.False(t, valid)
}

func TestEntailsModusPonens(t *testing.T) {
	p, err := api.ParseFormula(config.LogicClassical, "p")
	require.NoError(t, err)
	impl, err := api.ParseFormula(config.LogicClassical, "p -> q")
	require.NoError(t, err)
	q, err := api.ParseFormula(config.LogicClassical, "q")
	require.NoError(t, err)

	ok, err := api.Entails(config.LogicClassical, []formula.Formula{p, impl}, q, api.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)

	notOk, err := api.Entails(config.LogicClassical, []formula.Formula{impl}, q, api.DefaultOptions())
	require.NoError(t, err)
	require.False(t, notOk, "p -> q alone, without p, must not entail q")
}

func TestListLogicsContainsAllFour(t *testing.T) {
	names := api.ListLogics()
	require.Contains(t, names, config.LogicClassical)
	require.Contains(t, names, config.LogicWK3)
	require.Contains(t, names, config.LogicWKrQ)
	require.Contains(t, names, config.LogicFDE)
}

func TestParseSignedFormulaRejectsUnknownLogic(t *testing.T) {
	_, err := api.Parse("modal-s5", "T:p")
	require.Error(t, err)
}
