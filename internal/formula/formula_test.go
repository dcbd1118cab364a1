package formula_test

import (
	"testing"

	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/stretchr/testify/require"
)

func TestNewCompoundArityMismatch(t *testing.T) {
	spec := formula.DefaultConnectives()["&"]
	_, err := formula.NewCompound(spec, []formula.Formula{formula.Atom{Name: "p"}})
	require.ErrorIs(t, err, formula.ErrMalformed)
}

func TestEqualsStructural(t *testing.T) {
	and := formula.DefaultConnectives()["&"]
	a, err := formula.NewCompound(and, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	require.NoError(t, err)
	b, err := formula.NewCompound(and, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	require.NoError(t, err)
	require.True(t, formula.Equals(a, b))
	require.Equal(t, formula.Hash(a), formula.Hash(b))
}

func TestAliasSymbolsNotStructurallyEqual(t *testing.T) {
	and := formula.DefaultConnectives()["&"]
	alt := formula.DefaultConnectives()["'"]
	a, _ := formula.NewCompound(and, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	b, _ := formula.NewCompound(alt, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	// Distinct symbols are structurally distinct at the AST level; alias
	// equivalence is established by the parser canonicalizing to one
	// connective, not by Formula.Equals.
	require.False(t, formula.Equals(a, b))
}

func TestPrintInfixPrefixFunctional(t *testing.T) {
	and := formula.DefaultConnectives()["&"]
	not := formula.DefaultConnectives()["~"]
	conj, _ := formula.NewCompound(and, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	require.Equal(t, "(p & q)", conj.String())

	neg, _ := formula.NewCompound(not, []formula.Formula{formula.Atom{Name: "p"}})
	require.Equal(t, "~p", neg.String())

	pred := formula.Predicate{Name: "Bird", Terms: []formula.Term{formula.Constant{Name: "tweety"}}}
	require.Equal(t, "Bird(tweety)", pred.String())
}

func TestRestrictedQuantifierPrint(t *testing.T) {
	univ := formula.RestrictedUniversal{
		Var:         "X",
		Restriction: formula.Predicate{Name: "Bird", Terms: []formula.Term{formula.Variable{Name: "X"}}},
		Matrix:      formula.Predicate{Name: "Flies", Terms: []formula.Term{formula.Variable{Name: "X"}}},
	}
	require.Equal(t, "[∀X Bird(X)]Flies(X)", univ.String())
}

func TestSubstituteCaptureAvoiding(t *testing.T) {
	q := formula.RestrictedUniversal{
		Var:         "X",
		Restriction: formula.Predicate{Name: "Bird", Terms: []formula.Term{formula.Variable{Name: "X"}}},
		Matrix:      formula.Predicate{Name: "Flies", Terms: []formula.Term{formula.Variable{Name: "X"}}},
	}
	env := map[string]formula.Term{"X": formula.Constant{Name: "tweety"}}
	result := formula.Substitute(q, env)
	univ, ok := result.(formula.RestrictedUniversal)
	require.True(t, ok)
	// Bound X is untouched because it was removed from env before descending.
	require.Equal(t, "[∀X Bird(X)]Flies(X)", univ.String())
}

func TestAtoms(t *testing.T) {
	and := formula.DefaultConnectives()["&"]
	f, _ := formula.NewCompound(and, []formula.Formula{formula.Atom{Name: "p"}, formula.Atom{Name: "q"}})
	names := formula.SortedAtomNames(f)
	require.Equal(t, []string{"p", "q"}, names)
}
