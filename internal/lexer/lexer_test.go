package lexer_test

import (
	"testing"

	"github.com/bradleypallen/tableaux-go/internal/lexer"
	"github.com/bradleypallen/tableaux-go/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextTokenPropositional(t *testing.T) {
	l := lexer.New("~p & (q | r) -> s")
	want := []token.Type{
		token.NOT, token.IDENT, token.AND, token.LPAREN, token.IDENT, token.OR,
		token.IDENT, token.RPAREN, token.IMPLIES, token.IDENT, token.EOF,
	}
	for i, w := range want {
		tok := l.NextToken()
		require.Equalf(t, w, tok.Type, "token %d: lexeme %q", i, tok.Lexeme)
	}
}

func TestNextTokenQuantifiedAndPredicate(t *testing.T) {
	l := lexer.New("[∀X Bird(X)]Flies(X)")
	want := []token.Type{
		token.LBRACKET, token.FORALL, token.VARNAME, token.PREDNAME, token.LPAREN,
		token.VARNAME, token.RPAREN, token.RBRACKET, token.PREDNAME, token.LPAREN,
		token.VARNAME, token.RPAREN, token.EOF,
	}
	for i, w := range want {
		tok := l.NextToken()
		require.Equalf(t, w, tok.Type, "token %d: lexeme %q", i, tok.Lexeme)
	}
}

func TestAndAlias(t *testing.T) {
	l := lexer.New("p ' q")
	require.Equal(t, token.IDENT, l.NextToken().Type)
	require.Equal(t, token.AND_ALT, l.NextToken().Type)
	require.Equal(t, token.IDENT, l.NextToken().Type)
}

func TestIllegalCharacter(t *testing.T) {
	l := lexer.New("p @ q")
	require.Equal(t, token.IDENT, l.NextToken().Type)
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.NotNil(t, l.Err)
}
