package formula

import "strings"

// String renders a Compound per its ConnectiveSpec.Format: infix prints
// parenthesized, prefix prints without parentheses for a single operand,
// functional prints "name(arg,...)".
func (c Compound) String() string {
	switch c.Connective.Format {
	case Prefix:
		return c.Connective.Symbol + c.Args[0].String()
	case Functional:
		parts := make([]string, len(c.Args))
		for i, a := range c.Args {
			parts[i] = a.String()
		}
		return c.Connective.Symbol + "(" + strings.Join(parts, ",") + ")"
	default: // Infix
		parts := make([]string, len(c.Args))
		for i, a := range c.Args {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, " "+c.Connective.Symbol+" ") + ")"
	}
}

// String renders [∃X restriction]matrix.
func (r RestrictedExistential) String() string {
	return "[∃" + r.Var + " " + r.Restriction.String() + "]" + r.Matrix.String()
}

// String renders [∀X restriction]matrix.
func (r RestrictedUniversal) String() string {
	return "[∀" + r.Var + " " + r.Restriction.String() + "]" + r.Matrix.String()
}
