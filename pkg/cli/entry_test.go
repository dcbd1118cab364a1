package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradleypallen/tableaux-go/pkg/cli"
)

func TestRunTautologyIsSatisfiableExitsSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"p | ~p"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.Contains(t, stdout.String(), "SATISFIABLE")
	require.Empty(t, stderr.String())
}

func TestRunUnsatisfiableQueryStillExitsSuccess(t *testing.T) {
	// Exit codes report process health, not the verdict — an
	// unsatisfiable result is still a successful run.
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--sign", "F", "p | ~p", "--logic", "wk3"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.Contains(t, stdout.String(), "wk3")
}

func TestRunBadFormulaIsLogicError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"p &"}, &stdout, &stderr)
	require.Equal(t, cli.ExitLogicError, code)
	require.NotEmpty(t, stderr.String())
}

func TestRunUnknownFlagIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--nonsense", "p"}, &stdout, &stderr)
	require.Equal(t, cli.ExitUsageError, code)
}

func TestRunNoQueryIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run(nil, &stdout, &stderr)
	require.Equal(t, cli.ExitUsageError, code)
}

func TestRunListLogicsPrintsAllFour(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--list-logics"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	for _, name := range []string{"classical", "wk3", "wkrq", "fde"} {
		require.True(t, strings.Contains(stdout.String(), name), "missing %s", name)
	}
}

func TestRunModelsFlagIncludesAssignments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--models", "p | q"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.Contains(t, stdout.String(), "model:")
}

func TestRunWithoutModelsFlagOmitsAssignments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"p | q"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.NotContains(t, stdout.String(), "model:")
}

func TestRunValidateOnlySkipsVerdict(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--validate-only", "p & q"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.Empty(t, stdout.String())
}

func TestRunJSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Run([]string{"--format", "json", "p"}, &stdout, &stderr)
	require.Equal(t, cli.ExitSuccess, code)
	require.Contains(t, stdout.String(), `"satisfiable"`)
}
