// Package api is the library facade over parsing, rule selection, and
// tableau construction: Parse, Solve, Satisfiable, Valid, and Entails, each
// returning typed results or a *diagnostics.Error rather than panicking.
package api

import (
	"fmt"

	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/diagnostics"
	"github.com/bradleypallen/tableaux-go/internal/formula"
	"github.com/bradleypallen/tableaux-go/internal/logic"
	_ "github.com/bradleypallen/tableaux-go/internal/logics" // registers classical/wk3/wkrq/fde
	"github.com/bradleypallen/tableaux-go/internal/obslog"
	"github.com/bradleypallen/tableaux-go/internal/parser"
	"github.com/bradleypallen/tableaux-go/internal/pipeline"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/internal/tableau"
)

// Result is the outcome of one Solve call: whether the input signed
// formula(s) are satisfiable, up to Options.MaxModels witnessing models,
// and enough bookkeeping to support a --stats report.
type Result struct {
	Satisfiable          bool
	IncompleteSaturation bool
	Models               []tableau.Model
	Stats                tableau.Stats
	Trace                *tableau.Trace
}

// Options configures a Solve call.
type Options struct {
	MaxGammaApplications int
	MaxModels            int
	// Parallel runs branch saturation across a bounded worker pool
	// (internal/tableau.RunParallel) instead of sequentially.
	Parallel bool
	Workers  int
}

// DefaultOptions mirrors the CLI's defaults.
func DefaultOptions() Options {
	d := tableau.DefaultOptions()
	return Options{MaxGammaApplications: d.MaxGammaApplications, MaxModels: d.MaxModels}
}

// Parse parses "Sign:Formula" text against logicName's connective grammar,
// returning the resolved sign.Sign (as its canonical letter) and formula.
func Parse(logicName, input string) (signed.Formula, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return signed.Formula{}, err
	}
	p := parser.New(input, plugin.Connectives)
	signName, f, perr := p.ParseSignedFormula()
	if perr != nil {
		return signed.Formula{}, perr
	}
	s := plugin.ResolveSign(signName)
	if !plugin.Signs.Has(s) {
		return signed.Formula{}, diagnostics.New(diagnostics.ErrUnsupportedSign, diagnostics.Position{},
			fmt.Sprintf("sign %q is not defined in logic %q", signName, logicName)).WithDetail(logicName)
	}
	return signed.Formula{Sign: s, Formula: f}, nil
}

// ParseSigned parses a bare formula under logicName's grammar and pairs it
// with signName (the CLI's --sign flag); an empty signName resolves to the
// logic's default sign.
func ParseSigned(logicName, signName, input string) (signed.Formula, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return signed.Formula{}, err
	}
	f, err := ParseFormula(logicName, input)
	if err != nil {
		return signed.Formula{}, err
	}
	name := signName
	if name == "" {
		name = plugin.DefaultSignName
	}
	s := plugin.ResolveSign(name)
	if !plugin.Signs.Has(s) {
		return signed.Formula{}, diagnostics.New(diagnostics.ErrUnsupportedSign, diagnostics.Position{},
			fmt.Sprintf("sign %q is not defined in logic %q", name, logicName)).WithDetail(logicName)
	}
	return signed.Formula{Sign: s, Formula: f}, nil
}

// ParseFormula parses a bare (unsigned) formula under logicName's grammar.
func ParseFormula(logicName, input string) (formula.Formula, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return nil, err
	}
	p := parser.New(input, plugin.Connectives)
	f, perr := p.ParseFormula()
	if perr != nil {
		return nil, perr
	}
	if !p.AtEOF() {
		return nil, diagnostics.New(diagnostics.ErrParse, diagnostics.Position{}, "trailing input after formula")
	}
	return f, nil
}

// Solve builds a tableau for roots under logicName and saturates it,
// running the construct/extract stages of the solve pipeline. roots is
// normally one signed formula (Satisfiable) or several (an entailment
// check: premises signed T, conclusion signed F).
func Solve(logicName string, roots []signed.Formula, opts Options) (Result, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return Result{}, err
	}

	ctx := &pipeline.Context{Payload: roots}
	p := pipeline.New(
		pipeline.ProcessorFunc(func(c *pipeline.Context) *pipeline.Context {
			constructed := tableau.New(plugin, tableau.Options{
				MaxGammaApplications: orDefault(opts.MaxGammaApplications, config.DefaultMaxGammaApplications),
				MaxModels:            orDefault(opts.MaxModels, config.DefaultMaxModels),
			})
			sfs := c.Payload.([]signed.Formula)
			obslog.Logger().Debugf("solving %d root formula(s) under %s", len(sfs), logicName)
			var outcome tableau.Outcome
			if opts.Parallel {
				outcome = constructed.RunParallel(sfs, opts.Workers)
			} else {
				outcome = constructed.Run(sfs)
			}
			c.Result = outcome
			return c
		}),
		pipeline.ProcessorFunc(func(c *pipeline.Context) *pipeline.Context {
			outcome := c.Result.(tableau.Outcome)
			models := make([]tableau.Model, 0, len(outcome.OpenBranches))
			for _, b := range outcome.OpenBranches {
				models = append(models, tableau.ExtractModel(plugin, b))
			}
			c.Result = Result{
				Satisfiable:          !outcome.Closed,
				IncompleteSaturation: outcome.IncompleteSaturation,
				Models:               models,
				Stats:                outcome.Stats,
				Trace:                outcome.Trace,
			}
			return c
		}),
	)
	final := p.Run(ctx)
	if final.Err != nil {
		return Result{}, final.Err
	}
	return final.Result.(Result), nil
}

// Satisfiable reports whether f is satisfiable under logicName, signed with
// the logic's default sign (normally T).
func Satisfiable(logicName string, f formula.Formula, opts Options) (bool, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return false, err
	}
	root := signed.Formula{Sign: plugin.ResolveSign(plugin.DefaultSignName), Formula: f}
	result, err := Solve(logicName, []signed.Formula{root}, opts)
	if err != nil {
		return false, err
	}
	return result.Satisfiable, nil
}

// Valid reports whether f is valid under logicName: its negation (F:f) must
// be unsatisfiable.
func Valid(logicName string, f formula.Formula, opts Options) (bool, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return false, err
	}
	fSign, ok := plugin.SignNames[config.SignF]
	if !ok {
		return false, diagnostics.New(diagnostics.ErrUnsupportedSign, diagnostics.Position{},
			fmt.Sprintf("logic %q has no F sign to negate against for Valid", logicName))
	}
	root := signed.Formula{Sign: fSign, Formula: f}
	result, err := Solve(logicName, []signed.Formula{root}, opts)
	if err != nil {
		return false, err
	}
	return !result.Satisfiable, nil
}

// Entails reports whether premises classically entail conclusion under
// logicName: T:premises plus F:conclusion must be unsatisfiable.
func Entails(logicName string, premises []formula.Formula, conclusion formula.Formula, opts Options) (bool, error) {
	plugin, err := logic.Global().Get(logicName)
	if err != nil {
		return false, err
	}
	tSign, ok := plugin.SignNames[config.SignT]
	if !ok {
		return false, diagnostics.New(diagnostics.ErrUnsupportedSign, diagnostics.Position{},
			fmt.Sprintf("logic %q has no T sign for Entails' premise assertions", logicName))
	}
	fSign, ok := plugin.SignNames[config.SignF]
	if !ok {
		return false, diagnostics.New(diagnostics.ErrUnsupportedSign, diagnostics.Position{},
			fmt.Sprintf("logic %q has no F sign for Entails' conclusion denial", logicName))
	}
	roots := make([]signed.Formula, 0, len(premises)+1)
	for _, premise := range premises {
		roots = append(roots, signed.Formula{Sign: tSign, Formula: premise})
	}
	roots = append(roots, signed.Formula{Sign: fSign, Formula: conclusion})
	result, err := Solve(logicName, roots, opts)
	if err != nil {
		return false, err
	}
	return !result.Satisfiable, nil
}

// ListLogics returns every registered logic's canonical name, used by the
// CLI's --list-logics flag.
func ListLogics() []string {
	return logic.Global().List()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
