package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/parser"
)

func connectives() map[string]formula.ConnectiveSpec {
	return formula.DefaultConnectives()
}

func TestParsePropositionalPrecedence(t *testing.T) {
	p := parser.New("p & q | r -> ~s", connectives())
	f, err := p.ParseFormula()
	require.Nil(t, err)
	require.True(t, p.AtEOF())
	// -> binds loosest (right-assoc), | next, & tightest among binaries, ~ tightest overall:
	// (p & q) | r -> ~s
	require.Equal(t, "(((p & q) | r) -> ~s)", f.String())
}

func TestParseRightAssociativeImplication(t *testing.T) {
	p := parser.New("p -> q -> r", connectives())
	f, err := p.ParseFormula()
	require.Nil(t, err)
	require.Equal(t, "(p -> (q -> r))", f.String())
}

func TestParseAndAliasProducesEqualFormula(t *testing.T) {
	p1 := parser.New("p & q", connectives())
	f1, err := p1.ParseFormula()
	require.Nil(t, err)

	p2 := parser.New("p ' q", connectives())
	f2, err := p2.ParseFormula()
	require.Nil(t, err)

	require.Equal(t, f1.String(), f2.String())
	require.True(t, formula.Equals(f1, f2), "alias symbols parse to the same connective")
}

func TestParsePredicateWithTerms(t *testing.T) {
	p := parser.New("Bird(tweety)", connectives())
	f, err := p.ParseFormula()
	require.Nil(t, err)
	pred, ok := f.(formula.Predicate)
	require.True(t, ok)
	require.Equal(t, "Bird", pred.Name)
	require.Equal(t, formula.Constant{Name: "tweety"}, pred.Terms[0])
}

func TestParseRestrictedQuantifiers(t *testing.T) {
	p := parser.New("[∀X Bird(X)]Flies(X)", connectives())
	f, err := p.ParseFormula()
	require.Nil(t, err)
	u, ok := f.(formula.RestrictedUniversal)
	require.True(t, ok)
	require.Equal(t, "X", u.Var)
	require.Equal(t, "Bird(X)", u.Restriction.String())
	require.Equal(t, "Flies(X)", u.Matrix.String())

	p2 := parser.New("[∃X Bird(X)]Flies(X)", connectives())
	f2, err := p2.ParseFormula()
	require.Nil(t, err)
	_, ok = f2.(formula.RestrictedExistential)
	require.True(t, ok)
}

func TestParseSignedFormula(t *testing.T) {
	p := parser.New("T:p & q", connectives())
	signName, f, err := p.ParseSignedFormula()
	require.Nil(t, err)
	require.Equal(t, "T", signName)
	require.Equal(t, "(p & q)", f.String())
}

func TestParseRejectsTrailingTokens(t *testing.T) {
	p := parser.New("T:p)", connectives())
	_, _, err := p.ParseSignedFormula()
	require.NotNil(t, err)
}

func TestParseRejectsIllegalCharacter(t *testing.T) {
	p := parser.New("T:p @ q", connectives())
	_, _, err := p.ParseSignedFormula()
	require.NotNil(t, err)
}

func TestParseMalformedArityIsAnError(t *testing.T) {
	specs := connectives()
	unary := specs["~"]
	unary.Arity = 2 // corrupt the table to force NewCompound's arity check to fire
	specs["~"] = unary
	p := parser.New("~p", specs)
	_, err := p.ParseFormula()
	require.NotNil(t, err)
}

func TestRoundTripPrintThenParse(t *testing.T) {
	inputs := []string{
		"p",
		"~p",
		"p & q",
		"p | q",
		"p -> q",
		"(p & q) | ~r",
		"[∀X Bird(X)]Flies(X)",
		"[∃X Student(X)]Enrolled(X,course1)",
	}
	for _, in := range inputs {
		p := parser.New(in, connectives())
		f, err := p.ParseFormula()
		require.Nilf(t, err, "parsing %q", in)
		require.Truef(t, p.AtEOF(), "parsing %q left trailing input", in)

		p2 := parser.New(f.String(), connectives())
		f2, err2 := p2.ParseFormula()
		require.Nilf(t, err2, "re-parsing printed form of %q: %q", in, f.String())
		require.Truef(t, formula.Equals(f, f2), "round trip mismatch for %q: got %q then %q", in, f.String(), f2.String())
	}
}
