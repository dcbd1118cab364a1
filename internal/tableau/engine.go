package tableau

import (
	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	"github.com/bradleypallen/tableaux-go/internal/rules"
	"github.com/bradleypallen/tableaux-go/internal/signed"
)

// Options configures tableau construction.
type Options struct {
	// MaxGammaApplications caps how many times any single (γ rule, signed
	// formula) pair may be instantiated against new domain constants on
	// one branch, before the engine gives up and reports
	// IncompleteSaturation rather than looping forever.
	MaxGammaApplications int
	// MaxModels caps how many open branches Run returns in
	// Outcome.OpenBranches; 0 means "all".
	MaxModels int
}

// DefaultOptions mirrors the CLI's defaults (internal/config).
func DefaultOptions() Options {
	return Options{MaxGammaApplications: config.DefaultMaxGammaApplications, MaxModels: config.DefaultMaxModels}
}

// Outcome is the result of running a tableau to completion: either every
// branch closed (the input signed formula set is unsatisfiable), or at
// least one branch survived open (satisfiable), with models extractable
// from the survivors.
type Outcome struct {
	Closed               bool
	OpenBranches         []*Branch
	ClosedBranchCount    int
	IncompleteSaturation bool
	Trace                *Trace
	Stats                Stats
}

// Stats accumulates size/shape counters for a construction run.
type Stats struct {
	BranchesExplored int
	RuleApplications int
	MaxBranchDepth    int
}

// Tableau constructs and holds the evolving proof tree for one query.
type Tableau struct {
	plugin  *logic.Plugin
	options Options
	trace   *Trace

	nextBranchID   int
	freshCounter   int
	seenSignatures map[string]bool
	stats          Stats
}

// New builds a Tableau for plugin with the given construction options.
func New(plugin *logic.Plugin, options Options) *Tableau {
	return &Tableau{
		plugin:         plugin,
		options:        options,
		trace:          newTrace(),
		seenSignatures: map[string]bool{},
	}
}

func (t *Tableau) freshConstant() formula.Constant {
	t.freshCounter++
	return formula.Constant{Name: freshConstantName(t.freshCounter)}
}

func (t *Tableau) env() rules.Env {
	e := t.plugin.RuleEnv(t.freshConstant)
	return e
}

// Run builds the initial branch from roots and saturates it (and every
// branch it spawns): pick the highest-priority applicable rule, apply it,
// repeat until every branch is closed or saturated.
func (t *Tableau) Run(roots []signed.Formula) Outcome {
	root := newBranch(t.nextBranchID)
	t.nextBranchID++
	for _, sf := range roots {
		root.add(t.plugin.Signs, sf)
	}
	t.trace.record(Step{Kind: StepInitial, BranchID: root.id, Produced: roots})

	work := []*Branch{root}
	var open []*Branch
	incomplete := false

	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]

		if b.closed {
			t.stats.BranchesExplored++
			t.trace.record(Step{Kind: StepClosure, BranchID: b.id, Reason: b.closureReason})
			continue
		}

		children, applied, ranOutOfBudget := t.step(b)
		if !applied {
			t.stats.BranchesExplored++
			if b.closed {
				t.trace.record(Step{Kind: StepClosure, BranchID: b.id, Reason: b.closureReason})
				continue
			}
			sig := b.signature()
			if t.seenSignatures[sig] {
				continue // duplicate of an already-kept open branch
			}
			t.seenSignatures[sig] = true
			if ranOutOfBudget {
				incomplete = true
			}
			t.trace.record(Step{Kind: StepCompletion, BranchID: b.id})
			open = append(open, b)
			continue
		}

		for _, c := range children {
			work = append(work, c)
		}
	}

	t.stats.MaxBranchDepth = maxDepth(open)
	outcome := Outcome{
		Closed:               len(open) == 0,
		OpenBranches:         open,
		ClosedBranchCount:    t.stats.BranchesExplored - len(open),
		IncompleteSaturation: incomplete,
		Trace:                t.trace,
		Stats:                t.stats,
	}
	if t.options.MaxModels > 0 && len(outcome.OpenBranches) > t.options.MaxModels {
		outcome.OpenBranches = outcome.OpenBranches[:t.options.MaxModels]
	}
	return outcome
}

// step finds and applies the single highest-priority rule step available
// on b, returning the branch(es) that replace it. ok is false when b is
// saturated (no α/β/δ work left, and no γ work left or γ budget exhausted);
// ranOutOfBudget distinguishes genuine saturation from giving up early.
func (t *Tableau) step(b *Branch) (children []*Branch, ok bool, ranOutOfBudget bool) {
	if c, applied := t.tryNonQuantifier(b); applied {
		return c, true, false
	}
	c, applied, budgetExhausted := t.tryQuantifier(b)
	return c, applied, budgetExhausted
}

// tryNonQuantifier scans for the first (in branch order) unattempted
// signed formula that matches an α, β, or δ rule — non-branching before
// branching; γ/δ quantifier instantiation is handled separately since it
// can re-fire per constant.
func (t *Tableau) tryNonQuantifier(b *Branch) ([]*Branch, bool) {
	env := t.env()
	best := -1
	var bestRule rules.Rule
	var bestBindings [][]signed.Formula
	var bestSF signed.Formula
	bestKey := ""

	for _, sf := range b.formulas {
		key := string(sf.Sign) + "|" + sf.Formula.String()
		if b.attempted[key] {
			continue
		}
		matched := false
		for _, r := range t.plugin.Rules {
			if r.Kind == rules.Gamma {
				continue
			}
			branches, applies := r.TryApply(sf, env)
			if !applies {
				continue
			}
			matched = true
			score := r.Priority*10 + r.Kind.Ordinal()
			if best == -1 || score < best {
				best = score
				bestRule = r
				bestBindings = branches
				bestSF = sf
				bestKey = key
			}
			break // each (sign, shape) combination matches exactly one rule per logic
		}
		if !matched {
			// Atomic literal, or a compound this logic has no rule for yet
			// (shouldn't happen for well-formed input): mark attempted so
			// it is never rescanned.
			b.attempted[key] = true
		}
	}
	if best == -1 {
		return nil, false
	}
	b.attempted[bestKey] = true
	t.stats.RuleApplications++
	return t.applyBranches(b, bestRule, bestSF, bestBindings), true
}

// tryQuantifier applies the first available γ-rule instantiation (one new
// (rule, signed formula, constant) combination). Only γ rules are
// considered here; δ rules are applied by tryNonQuantifier.
func (t *Tableau) tryQuantifier(b *Branch) ([]*Branch, bool, bool) {
	env := t.env()
	budgetHit := false
	for _, sf := range b.formulas {
		for _, r := range t.plugin.Rules {
			if r.Kind != rules.Gamma {
				continue
			}
			wantSign := env.ResolveSign(r.SignName)
			if sf.Sign != wantSign {
				continue
			}
			if _, ok := rules.Match(r.Pattern, sf.Formula); !ok {
				continue
			}
			ruleKey := r.Name + "|" + sf.Formula.String()
			used := b.gammaApplied[ruleKey]
			if used == nil {
				used = map[string]bool{}
				b.gammaApplied[ruleKey] = used
			}
			for _, c := range b.constants {
				if used[c.Name] {
					continue
				}
				if len(used) >= t.options.MaxGammaApplications {
					budgetHit = true
					break
				}
				used[c.Name] = true
				instEnv := env
				instEnv.Constant = c
				branches, applies := r.TryApply(sf, instEnv)
				if !applies {
					continue
				}
				t.stats.RuleApplications++
				return t.applyBranches(b, r, sf, branches), true, false
			}
		}
	}
	return nil, false, budgetHit
}

// applyBranches materializes a rule's conclusion branches: the first
// conclusion set is folded into b in place (no clone needed), and every
// additional one clones b and folds that conclusion set in instead: α/δ
// rules return one conclusion set, β/γ-with-branching rules return two or
// more.
func (t *Tableau) applyBranches(b *Branch, r rules.Rule, sf signed.Formula, conclusionSets [][]signed.Formula) []*Branch {
	if len(conclusionSets) == 0 {
		return []*Branch{b}
	}
	out := make([]*Branch, 0, len(conclusionSets))
	for i, conclusions := range conclusionSets {
		target := b
		if i > 0 {
			t.nextBranchID++
			target = b.clone(t.nextBranchID)
		}
		for _, c := range conclusions {
			target.add(t.plugin.Signs, c)
		}
		t.trace.record(Step{Kind: StepRuleApplication, BranchID: target.id, RuleName: r.Name, Produced: conclusions})
		out = append(out, target)
	}
	return out
}

func maxDepth(branches []*Branch) int {
	max := 0
	for _, b := range branches {
		if n := len(b.formulas); n > max {
			max = n
		}
	}
	return max
}
