// Package config holds process-wide constants for the tableaux engine and
// its surrounding tooling.
package config

// Version is the current engine version. Set at build time by -ldflags.
var Version = "0.1.0"

// DefaultMaxGammaApplications bounds γ-rule (restricted universal)
// re-application per branch before the engine gives up and reports
// IncompleteSaturation rather than risk non-termination.
const DefaultMaxGammaApplications = 64

// DefaultMaxModels bounds how many models Solve collects, one per open
// branch kept by the tableau.
const DefaultMaxModels = 10

// BatchCommentPrefix marks a comment line in batch/file input (one formula
// per line).
const BatchCommentPrefix = "#"

// Canonical sign symbols shared by the shipped logics.
const (
	SignT = "T"
	SignF = "F"
	SignU = "U" // weak Kleene "undefined"
	SignM = "M" // wKrQ "may" / true
	SignN = "N" // wKrQ / FDE "neither"
	SignB = "B" // FDE "both"
)

// Canonical logic names.
const (
	LogicClassical = "classical"
	LogicWK3       = "wk3"
	LogicWKrQ      = "wkrq"
	LogicFDE       = "fde"
)

// IsDebug is a process-wide debug switch. The CLI's --debug flag does not
// set it; that flag goes through obslog.SetDebug.
var IsDebug = false
