package tableau

import (
	"sort"

	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/sign"
	"github.com/bradleypallen/tableaux-go/internal/truth"
)

// Model is a satisfying assignment read off one open branch: each
// atom/predicate gets a truth value consistent with every sign recorded
// for it on the branch.
type Model struct {
	Assignments map[string]truth.Value
	Domain      []string
}

// ExtractModel reads a Model off b, intersecting every sign's truth
// conditions recorded for each atomic formula so a literal constrained by
// more than one signed formula still gets one consistent value.
func ExtractModel(plugin *logic.Plugin, b *Branch) Model {
	constraints := map[string]map[truth.Value]struct{}{}
	order := []string{}
	for _, sf := range b.formulas {
		if !isAtomic(sf.Formula) {
			continue
		}
		key := sf.Formula.String()
		cond := plugin.Signs.Conditions(sf.Sign)
		if existing, ok := constraints[key]; ok {
			constraints[key] = sign.Intersect(existing, cond)
		} else {
			constraints[key] = cloneValueSet(cond)
			order = append(order, key)
		}
	}

	assignments := make(map[string]truth.Value, len(constraints))
	for key, vals := range constraints {
		assignments[key] = pickValue(plugin, vals)
	}

	domainNames := make([]string, len(b.constants))
	for i, c := range b.constants {
		domainNames[i] = c.Name
	}
	sort.Strings(domainNames)

	return Model{Assignments: assignments, Domain: domainNames}
}

func isAtomic(f formula.Formula) bool {
	switch f.(type) {
	case formula.Atom, formula.Predicate:
		return true
	default:
		return false
	}
}

// pickValue returns a deterministic representative of vals: the
// lowest-indexed value (in the logic's declared Values order) consistent
// with every sign recorded for the literal, preferring a designated value
// when more than one remains (a nicer-looking witness; any member of vals
// is an equally valid choice).
func pickValue(plugin *logic.Plugin, vals map[truth.Value]struct{}) truth.Value {
	var designatedPick, anyPick truth.Value
	haveDesignated, haveAny := false, false
	for _, v := range plugin.Truth.Values {
		if _, ok := vals[v]; !ok {
			continue
		}
		if !haveAny {
			anyPick = v
			haveAny = true
		}
		if plugin.Truth.IsDesignated(v) && !haveDesignated {
			designatedPick = v
			haveDesignated = true
		}
	}
	if haveDesignated {
		return designatedPick
	}
	return anyPick
}

func cloneValueSet(in map[truth.Value]struct{}) map[truth.Value]struct{} {
	out := make(map[truth.Value]struct{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
