// Package tableau implements semantic tableau construction: priority-ordered
// α/β/γ/δ rule application, hash-indexed closure detection, canonical-
// signature duplicate-branch elimination, and model extraction from
// surviving open branches.
package tableau

import (
	"sort"
	"strconv"

	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/signed"
)

// Branch is one path through the tableau: an accumulating set of signed
// formulas, closed as soon as two of them contradict.
type Branch struct {
	id int

	formulas []signed.Formula
	// index speeds up contradiction detection to O(1) amortized: formula
	// text -> signs already asserted for that formula on this branch.
	index map[string][]sign.Sign

	// attempted records (sign,formula) pairs already scanned for a
	// non-quantifier (α/β/δ) rule match, so saturated literals are not
	// rescanned every step.
	attempted map[string]bool

	// gammaApplied[key] is the set of constant names a γ rule has already
	// been instantiated against for one particular signed formula (keyed
	// by rule name + formula text).
	gammaApplied map[string]map[string]bool

	// constants is this branch's domain: every constant introduced by a δ
	// rule or occurring in the input, in introduction order.
	constants   []formula.Constant
	constantSet map[string]bool

	closed        bool
	closureReason string
}

func newBranch(id int) *Branch {
	return &Branch{
		id:           id,
		index:        map[string][]sign.Sign{},
		attempted:    map[string]bool{},
		gammaApplied: map[string]map[string]bool{},
		constantSet:  map[string]bool{},
	}
}

// clone deep-copies b for a β-split: the two (or more) children evolve
// independently from this point on.
func (b *Branch) clone(newID int) *Branch {
	nb := newBranch(newID)
	nb.formulas = append([]signed.Formula(nil), b.formulas...)
	for k, v := range b.index {
		nb.index[k] = append([]sign.Sign(nil), v...)
	}
	for k := range b.attempted {
		nb.attempted[k] = true
	}
	for k, set := range b.gammaApplied {
		cp := make(map[string]bool, len(set))
		for c := range set {
			cp[c] = true
		}
		nb.gammaApplied[k] = cp
	}
	nb.constants = append([]formula.Constant(nil), b.constants...)
	for k, v := range b.constantSet {
		nb.constantSet[k] = v
	}
	nb.closed = b.closed
	nb.closureReason = b.closureReason
	return nb
}

// add appends sf to the branch, closing it if sf contradicts a formula
// already present.
func (b *Branch) add(signs sign.System, sf signed.Formula) {
	b.formulas = append(b.formulas, sf)
	if b.closed {
		return
	}
	key := sf.Formula.String()
	for _, existing := range b.index[key] {
		if signs.Contradictory(sf.Sign, existing) {
			b.closed = true
			b.closureReason = sf.String() + " contradicts " + string(existing) + ":" + key
			break
		}
	}
	b.index[key] = append(b.index[key], sf.Sign)
	b.noteConstants(sf.Formula)
}

// noteConstants records every Constant occurring in f as part of this
// branch's domain (used to drive γ-rule instantiation).
func (b *Branch) noteConstants(f formula.Formula) {
	for _, t := range termsIn(f) {
		walkConstants(t, func(c formula.Constant) {
			if !b.constantSet[c.Name] {
				b.constantSet[c.Name] = true
				b.constants = append(b.constants, c)
			}
		})
	}
}

func termsIn(f formula.Formula) []formula.Term {
	switch fv := f.(type) {
	case formula.Predicate:
		return fv.Terms
	case formula.Compound:
		var out []formula.Term
		for _, a := range fv.Args {
			out = append(out, termsIn(a)...)
		}
		return out
	case formula.RestrictedExistential:
		return append(termsIn(fv.Restriction), termsIn(fv.Matrix)...)
	case formula.RestrictedUniversal:
		return append(termsIn(fv.Restriction), termsIn(fv.Matrix)...)
	default:
		return nil
	}
}

func walkConstants(t formula.Term, visit func(formula.Constant)) {
	switch tv := t.(type) {
	case formula.Constant:
		visit(tv)
	case formula.FunctionApplication:
		for _, sub := range tv.Terms {
			walkConstants(sub, visit)
		}
	}
}

// freshConstantName returns the domain constant name "c<counter>". It does
// not check the name against constants already on the branch.
func freshConstantName(counter int) string {
	return "c" + strconv.Itoa(counter)
}

// signature is a canonical, order-independent fingerprint of a branch's
// content, used to eliminate duplicate branches cheaply: identical branches
// compare equal without needing a full subset check.
func (b *Branch) signature() string {
	parts := make([]string, len(b.formulas))
	for i, sf := range b.formulas {
		parts[i] = sf.String()
	}
	sort.Strings(parts)
	out := ""
	for _, p := range parts {
		out += p + "\x00"
	}
	return out
}

// Formulas returns the branch's accumulated signed formulas, in the order
// they were added.
func (b *Branch) Formulas() []signed.Formula { return append([]signed.Formula(nil), b.formulas...) }

// Closed reports whether this branch has closed.
func (b *Branch) Closed() bool { return b.closed }

// ClosureReason explains why Closed() is true; empty otherwise.
func (b *Branch) ClosureReason() string { return b.closureReason }

// Domain returns the constants known on this branch, in introduction order.
func (b *Branch) Domain() []formula.Constant {
	return append([]formula.Constant(nil), b.constants...)
}
