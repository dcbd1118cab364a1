// Package cli implements the command-line surface, wired over pkg/api
// and pkg/format: manual os.Args scanning (the flag surface is small
// enough that a parsing library doesn't earn its keep) and an explicit
// process exit-code convention instead of panicking out of main.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bradleypallen/tableaux-go/internal/config"
)

// Flags is the parsed command line.
type Flags struct {
	Logic  string
	Sign   string // --sign=<symbol>; empty means the logic's default sign
	Query  string // positional formula text, absent when File/Batch is set
	File   string
	Batch  bool

	Models       bool // --models: include models in output
	Stats        bool
	Format       string // default|json|csv, plus the yaml addition
	MaxModels    int
	MaxGamma     int
	ValidateOnly bool
	ListLogics   bool
	Debug        bool
	Parallel     bool
	Help         bool
}

// DefaultFlags mirrors the CLI's out-of-the-box behavior.
func DefaultFlags() Flags {
	return Flags{
		Logic:     config.LogicClassical,
		MaxModels: config.DefaultMaxModels,
		MaxGamma:  config.DefaultMaxGammaApplications,
		Format:    "default",
	}
}

// ParseFlags scans args (normally os.Args[1:]) with a manual loop over
// positional and "--name value" / "--name=value" tokens, not a
// flag-package Parse call.
func ParseFlags(args []string) (Flags, error) {
	f := DefaultFlags()
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]
		name, value, hasValue := splitFlag(arg)
		switch name {
		case "--help", "-h":
			f.Help = true
		case "--list-logics":
			f.ListLogics = true
		case "--models":
			f.Models = true
		case "--stats":
			f.Stats = true
		case "--validate-only":
			f.ValidateOnly = true
		case "--debug":
			f.Debug = true
		case "--batch":
			f.Batch = true
		case "--parallel":
			f.Parallel = true
		case "--logic":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			f.Logic = v
			i += n
			continue
		case "--sign":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			f.Sign = v
			i += n
			continue
		case "--file":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			f.File = v
			i += n
			continue
		case "--format":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			f.Format = v
			i += n
			continue
		case "--max-models":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			parsed, perr := strconv.Atoi(v)
			if perr != nil {
				return f, fmt.Errorf("--max-models: %w", perr)
			}
			f.MaxModels = parsed
			i += n
			continue
		case "--max-gamma-applications":
			v, n, err := takeValue(args, i, value, hasValue)
			if err != nil {
				return f, err
			}
			parsed, perr := strconv.Atoi(v)
			if perr != nil {
				return f, fmt.Errorf("--max-gamma-applications: %w", perr)
			}
			f.MaxGamma = parsed
			i += n
			continue
		default:
			if strings.HasPrefix(arg, "--") {
				return f, fmt.Errorf("unknown flag %q", arg)
			}
			positional = append(positional, arg)
		}
		i++
	}

	if len(positional) > 0 {
		f.Query = strings.Join(positional, " ")
	}
	return f, nil
}

// splitFlag recognizes "--name=value" (returning name, value, true) or a
// bare "--name"/"-x" (returning name, "", false).
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") {
		return arg, "", false
	}
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		return arg[:eq], arg[eq+1:], true
	}
	return arg, "", false
}

// takeValue resolves a flag's value either from its "--name=value" form or
// from the next positional argument, advancing past however many tokens it
// consumed.
func takeValue(args []string, i int, value string, hasValue bool) (string, int, error) {
	if hasValue {
		return value, 1, nil
	}
	if i+1 >= len(args) {
		return "", 0, fmt.Errorf("%s requires a value", args[i])
	}
	return args[i+1], 2, nil
}
