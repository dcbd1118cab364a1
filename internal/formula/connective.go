package formula

// Associativity of a binary connective, used by the parser's precedence
// climbing and by printing.
type Associativity int

const (
	NoneAssoc Associativity = iota
	LeftAssoc
	RightAssoc
)

// Format controls how a Compound prints: infix (parenthesized, binary),
// prefix (no parens, single operand), or functional (name(arg,...)).
type Format int

const (
	Infix Format = iota
	Prefix
	Functional
)

// ConnectiveSpec describes one connective symbol's parsing and printing
// behavior. Two symbols may alias the same logical connective (e.g. "&" and
// "'" both denote conjunction) by sharing Arity/Precedence/Format but
// registering under distinct Symbol values with the same semantic meaning
// at the logic-plugin level (internal/logic).
type ConnectiveSpec struct {
	Symbol      string
	Arity       int
	Precedence  int
	Assoc       Associativity
	Format      Format
}

// DefaultPrecedence ladders from lowest to highest: implication (right) ->
// disjunction (left) -> conjunction (left) -> negation (prefix) -> atomic.
const (
	PrecImplies = 1
	PrecOr      = 2
	PrecAnd     = 3
	PrecNot     = 4
	PrecAtomic  = 5
)

// DefaultConnectives is the connective table shared by classical, WK3,
// wKrQ, and FDE logics — all four use the same propositional connective
// set; only signs/truth systems differ. It includes the "'" alias for "&".
func DefaultConnectives() map[string]ConnectiveSpec {
	return map[string]ConnectiveSpec{
		"~":  {Symbol: "~", Arity: 1, Precedence: PrecNot, Assoc: NoneAssoc, Format: Prefix},
		"&":  {Symbol: "&", Arity: 2, Precedence: PrecAnd, Assoc: LeftAssoc, Format: Infix},
		"'":  {Symbol: "'", Arity: 2, Precedence: PrecAnd, Assoc: LeftAssoc, Format: Infix},
		"|":  {Symbol: "|", Arity: 2, Precedence: PrecOr, Assoc: LeftAssoc, Format: Infix},
		"->": {Symbol: "->", Arity: 2, Precedence: PrecImplies, Assoc: RightAssoc, Format: Infix},
	}
}

// CanonicalSymbol maps an alias symbol to the symbol used as the connective's
// canonical name for truth-system lookups ("'" -> "&").
func CanonicalSymbol(symbol string) string {
	if symbol == "'" {
		return "&"
	}
	return symbol
}
