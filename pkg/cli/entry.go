package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/internal/obslog"
	"github.com/bradleypallen/tableaux-go/internal/signed"
	"github.com/bradleypallen/tableaux-go/pkg/api"
	"github.com/bradleypallen/tableaux-go/pkg/format"
)

// Exit codes: 0 success, 1 parse or logic error, 2 usage error. The
// satisfiable/unsatisfiable verdict is reported in the output record, not
// the process exit status.
const (
	ExitSuccess    = 0
	ExitLogicError = 1
	ExitUsageError = 2
)

// Run is the CLI entry point (cmd/tableaux/main.go's sole call), returning
// a process exit code rather than calling os.Exit itself so tests can drive
// it without terminating the test binary.
func Run(args []string, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, "tableaux:", err)
		return ExitUsageError
	}
	obslog.SetDebug(flags.Debug)

	if flags.Help {
		printUsage(stdout)
		return ExitSuccess
	}
	if flags.ListLogics {
		for _, name := range api.ListLogics() {
			fmt.Fprintln(stdout, name)
		}
		return ExitSuccess
	}

	queries, err := gatherQueries(flags)
	if err != nil {
		fmt.Fprintln(stderr, "tableaux:", err)
		return ExitUsageError
	}
	if len(queries) == 0 {
		printUsage(stderr)
		return ExitUsageError
	}

	opts := api.Options{MaxGammaApplications: flags.MaxGamma, MaxModels: flags.MaxModels, Parallel: flags.Parallel}
	reports, err := solveAll(flags, queries, opts)
	if err != nil {
		fmt.Fprintln(stderr, "tableaux:", err)
		return ExitLogicError
	}

	if !flags.ValidateOnly {
		if err := format.Write(stdout, format.Kind(resolveFormat(flags.Format)), reports); err != nil {
			fmt.Fprintln(stderr, "tableaux:", err)
			return ExitUsageError
		}
	}
	return ExitSuccess
}

// resolveFormat maps the "default" format name onto pkg/format's Text
// kind; other names pass through unchanged.
func resolveFormat(name string) string {
	if name == "" || name == "default" {
		return string(format.Text)
	}
	return name
}

func gatherQueries(flags Flags) ([]string, error) {
	if flags.File != "" {
		f, err := os.Open(flags.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readBatchLines(f), nil
	}
	if flags.Batch {
		return readBatchLines(os.Stdin), nil
	}
	if flags.Query == "" {
		return nil, nil
	}
	return []string{flags.Query}, nil
}

// readBatchLines reads one formula per line, skipping blank lines and
// lines starting with config.BatchCommentPrefix.
func readBatchLines(r io.Reader) []string {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, config.BatchCommentPrefix) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// solveAll parses and solves every query under flags.Logic/flags.Sign,
// stopping at the first parse or logic error: diagnostics are typed
// errors, not partial/best-effort output.
func solveAll(flags Flags, queries []string, opts api.Options) ([]format.Report, error) {
	reports := make([]format.Report, 0, len(queries))
	for _, query := range queries {
		sf, err := api.ParseSigned(flags.Logic, flags.Sign, query)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", query, err)
		}
		if flags.ValidateOnly {
			reports = append(reports, format.NewReport(uuid.NewString(), flags.Logic, query, api.Result{}, false))
			continue
		}

		res, err := api.Solve(flags.Logic, []signed.Formula{sf}, opts)
		if err != nil {
			return nil, fmt.Errorf("solving %q: %w", query, err)
		}
		if !flags.Models {
			res.Models = nil
		}
		reports = append(reports, format.NewReport(uuid.NewString(), flags.Logic, query, res, flags.Stats))
	}
	return reports, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "tableaux - semantic tableau satisfiability checker")
	fmt.Fprintln(w, "usage: tableaux [flags] 'formula'")
	fmt.Fprintln(w, "flags:")
	fmt.Fprintln(w, "  --logic NAME                 classical (default), wk3, wkrq, fde")
	fmt.Fprintln(w, "  --sign SYMBOL                sign to prove the formula under (default: the logic's own default)")
	fmt.Fprintln(w, "  --file PATH                  read one formula per line from PATH")
	fmt.Fprintln(w, "  --batch                      read one formula per line from stdin")
	fmt.Fprintln(w, "  --models                     include satisfying models in output")
	fmt.Fprintln(w, "  --format NAME                default (text), json, csv, yaml")
	fmt.Fprintln(w, "  --max-models N               cap models collected per query")
	fmt.Fprintln(w, "  --max-gamma-applications N   cap quantifier re-instantiation per branch")
	fmt.Fprintln(w, "  --stats                      include construction statistics")
	fmt.Fprintln(w, "  --validate-only              parse only, report no verdict")
	fmt.Fprintln(w, "  --parallel                   saturate branches across a worker pool")
	fmt.Fprintln(w, "  --list-logics                print every registered logic name")
	fmt.Fprintln(w, "  --debug                      verbose engine logging")
}

// isInteractive reports whether f is a terminal (go-isatty). Run does not
// call it: the output format is the same whether or not stdout is a
// terminal.
func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
