// Package format renders api.Result values for the CLI's --format flag:
// text, json, csv, and yaml, with github.com/dustin/go-humanize formatting
// the stats counters.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/bradleypallen/tableaux-go/internal/tableau"
	"github.com/bradleypallen/tableaux-go/pkg/api"
)

// Kind names a supported --format value.
type Kind string

const (
	Text Kind = "text"
	JSON Kind = "json"
	CSV  Kind = "csv"
	YAML Kind = "yaml"
)

// Report is the serializable projection of an api.Result, stamped with the
// query that produced it and an identifier correlating it across a batch
// run's --stats and --format=json output.
type Report struct {
	ID                   string            `json:"id" yaml:"id"`
	Logic                string            `json:"logic" yaml:"logic"`
	Query                string            `json:"query" yaml:"query"`
	Satisfiable          bool              `json:"satisfiable" yaml:"satisfiable"`
	IncompleteSaturation bool              `json:"incomplete_saturation,omitempty" yaml:"incomplete_saturation,omitempty"`
	Models               []ModelReport     `json:"models,omitempty" yaml:"models,omitempty"`
	Stats                *StatsReport      `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// ModelReport is one satisfying assignment, as a sorted list of atom=value
// pairs so JSON/CSV/YAML output is deterministic across runs.
type ModelReport struct {
	Assignments []string `json:"assignments" yaml:"assignments"`
	Domain      []string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// StatsReport mirrors tableau.Stats for --stats output.
type StatsReport struct {
	BranchesExplored string `json:"branches_explored" yaml:"branches_explored"`
	RuleApplications string `json:"rule_applications" yaml:"rule_applications"`
	MaxBranchDepth   string `json:"max_branch_depth" yaml:"max_branch_depth"`
}

// NewReport builds a Report from a Solve result. id is normally a
// uuid.NewString() value the caller stamps per query (pkg/cli wires
// github.com/google/uuid for this).
func NewReport(id, logicName, query string, result api.Result, withStats bool) Report {
	r := Report{
		ID:                   id,
		Logic:                logicName,
		Query:                query,
		Satisfiable:          result.Satisfiable,
		IncompleteSaturation: result.IncompleteSaturation,
	}
	for _, m := range result.Models {
		r.Models = append(r.Models, modelReport(m))
	}
	if withStats {
		r.Stats = &StatsReport{
			BranchesExplored: humanize.Comma(int64(result.Stats.BranchesExplored)),
			RuleApplications: humanize.Comma(int64(result.Stats.RuleApplications)),
			MaxBranchDepth:   humanize.Comma(int64(result.Stats.MaxBranchDepth)),
		}
	}
	return r
}

func modelReport(m tableau.Model) ModelReport {
	names := make([]string, 0, len(m.Assignments))
	for name := range m.Assignments {
		names = append(names, name)
	}
	sort.Strings(names)
	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = name + "=" + string(m.Assignments[name])
	}
	return ModelReport{Assignments: assignments, Domain: m.Domain}
}

// Write renders reports to w in the requested Kind.
func Write(w io.Writer, kind Kind, reports []Report) error {
	switch kind {
	case JSON:
		return writeJSON(w, reports)
	case YAML:
		return writeYAML(w, reports)
	case CSV:
		return writeCSV(w, reports)
	case Text, "":
		return writeText(w, reports)
	default:
		return fmt.Errorf("format: unknown kind %q", kind)
	}
}

func writeJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(reports)
}

func writeCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"id", "logic", "query", "satisfiable", "incomplete_saturation", "models"}); err != nil {
		return err
	}
	for _, r := range reports {
		var models []string
		for _, m := range r.Models {
			models = append(models, strings.Join(m.Assignments, " "))
		}
		row := []string{
			r.ID,
			r.Logic,
			r.Query,
			strconv.FormatBool(r.Satisfiable),
			strconv.FormatBool(r.IncompleteSaturation),
			strings.Join(models, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, reports []Report) error {
	for _, r := range reports {
		verdict := "UNSATISFIABLE"
		if r.Satisfiable {
			verdict = "SATISFIABLE"
		}
		if _, err := fmt.Fprintf(w, "%s [%s] %s -> %s", r.ID, r.Logic, r.Query, verdict); err != nil {
			return err
		}
		if r.IncompleteSaturation {
			if _, err := fmt.Fprint(w, " (incomplete saturation: γ budget exhausted)"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, m := range r.Models {
			if _, err := fmt.Fprintf(w, "  model: %s", strings.Join(m.Assignments, " ")); err != nil {
				return err
			}
			if len(m.Domain) > 0 {
				if _, err := fmt.Fprintf(w, " domain={%s}", strings.Join(m.Domain, ",")); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if r.Stats != nil {
			if _, err := fmt.Fprintf(w, "  branches=%s rule_applications=%s max_depth=%s\n",
				r.Stats.BranchesExplored, r.Stats.RuleApplications, r.Stats.MaxBranchDepth); err != nil {
				return err
			}
		}
	}
	return nil
}
