// Package formula implements the immutable formula abstract syntax tree: a
// closed tagged-variant interface (no dynamic dispatch), so consumers
// pattern-match with a type switch.
package formula

import "strings"

// Term is a closed variant: Constant, Variable, or FunctionApplication.
type Term interface {
	termNode()
	String() string
	// Vars returns the set of variable names occurring in the term.
	Vars() map[string]struct{}
}

// Constant is a domain element, lower-initial by convention.
type Constant struct {
	Name string
}

func (Constant) termNode()  {}
func (c Constant) String() string { return c.Name }
func (c Constant) Vars() map[string]struct{} { return map[string]struct{}{} }

// Variable is upper-initial by convention.
type Variable struct {
	Name string
}

func (Variable) termNode()  {}
func (v Variable) String() string { return v.Name }
func (v Variable) Vars() map[string]struct{} { return map[string]struct{}{v.Name: {}} }

// FunctionApplication applies a function symbol to a sequence of terms.
type FunctionApplication struct {
	Name  string
	Terms []Term
}

func (FunctionApplication) termNode() {}

func (f FunctionApplication) String() string {
	parts := make([]string, len(f.Terms))
	for i, t := range f.Terms {
		parts[i] = t.String()
	}
	return f.Name + "(" + strings.Join(parts, ",") + ")"
}

func (f FunctionApplication) Vars() map[string]struct{} {
	out := map[string]struct{}{}
	for _, t := range f.Terms {
		for v := range t.Vars() {
			out[v] = struct{}{}
		}
	}
	return out
}

// TermEquals reports structural equality between two terms.
func TermEquals(a, b Term) bool {
	switch av := a.(type) {
	case Constant:
		bv, ok := b.(Constant)
		return ok && av.Name == bv.Name
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	case FunctionApplication:
		bv, ok := b.(FunctionApplication)
		if !ok || av.Name != bv.Name || len(av.Terms) != len(bv.Terms) {
			return false
		}
		for i := range av.Terms {
			if !TermEquals(av.Terms[i], bv.Terms[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SubstituteTerm replaces occurrences of variables bound in env.
func SubstituteTerm(t Term, env map[string]Term) Term {
	switch tv := t.(type) {
	case Variable:
		if repl, ok := env[tv.Name]; ok {
			return repl
		}
		return tv
	case FunctionApplication:
		newTerms := make([]Term, len(tv.Terms))
		for i, sub := range tv.Terms {
			newTerms[i] = SubstituteTerm(sub, env)
		}
		return FunctionApplication{Name: tv.Name, Terms: newTerms}
	default:
		return t
	}
}
