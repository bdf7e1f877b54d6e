package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type paramRow struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type paramRows []paramRow

func (r paramRows) Headers() []string { return []string{"KEY", "VALUE"} }

func (r paramRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, p := range r {
		out[i] = []string{p.Key, p.Value}
	}
	return out
}

var sample = paramRows{{"FrameWidth", "80"}, {"Zoom", "0.65"}}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"  yaml ", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(sample))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "FrameWidth")
	assert.Contains(t, out, "0.65")
}

func TestPrintTableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(map[string]int{"n": 1}))
	assert.JSONEq(t, `{"n": 1}`, buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON).Print(sample))

	var got []paramRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []paramRow(sample), got)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatYAML).Print(sample))

	var got []paramRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []paramRow(sample), got)
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, KeyValueTable(&buf, [][2]string{{"GUID", "1b4e28ba"}, {"Header", "5.4 kB"}}))

	out := buf.String()
	assert.Contains(t, out, "GUID")
	assert.Contains(t, out, ":")
	assert.Contains(t, out, "5.4 kB")
}
