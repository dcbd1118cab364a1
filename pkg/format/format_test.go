package format_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bradleypallen/tableaux-go/internal/config"
	"github.com/bradleypallen/tableaux-go/pkg/api"
	"github.com/bradleypallen/tableaux-go/pkg/format"
)

func sampleReport(t *testing.T) format.Report {
	t.Helper()
	f, err := api.ParseFormula(config.LogicClassical, "p | q")
	require.NoError(t, err)
	sat, err := api.Satisfiable(config.LogicClassical, f, api.DefaultOptions())
	require.NoError(t, err)
	require.True(t, sat)

	return format.NewReport("req-1", config.LogicClassical, "p | q", api.Result{Satisfiable: true}, true)
}

func TestWriteTextContainsVerdict(t *testing.T) {
	var buf bytes.Buffer
	err := format.Write(&buf, format.Text, []format.Report{sampleReport(t)})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "SATISFIABLE")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	reports := []format.Report{sampleReport(t)}
	require.NoError(t, format.Write(&buf, format.JSON, reports))

	var decoded []format.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "req-1", decoded[0].ID)
	require.True(t, decoded[0].Satisfiable)
}

func TestWriteCSVHasHeaderRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.Write(&buf, format.CSV, []format.Report{sampleReport(t)}))
	require.Contains(t, buf.String(), "id,logic,query,satisfiable")
}

func TestWriteYAMLContainsID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.Write(&buf, format.YAML, []format.Report{sampleReport(t)}))
	require.Contains(t, buf.String(), "req-1")
}

func TestUnknownFormatIsAnError(t *testing.T) {
	var buf bytes.Buffer
	err := format.Write(&buf, format.Kind("xml"), []format.Report{sampleReport(t)})
	require.Error(t, err)
}
