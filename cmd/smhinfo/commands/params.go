package commands

import (
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-scanm/internal/cli/output"
	"github.com/robert-malhotra/go-scanm/scanm"
)

// maxCellWidth bounds value cells in table output unless --full is given.
const maxCellWidth = 72

type paramRecord struct {
	Key   string      `json:"key" yaml:"key"`
	Type  string      `json:"type" yaml:"type"`
	Shape []int       `json:"shape" yaml:"shape,flow"`
	Value scanm.Value `json:"value" yaml:"value"`
}

// paramTable renders parameters as rows of key, type, shape and value.
type paramTable struct {
	records []paramRecord
	full    bool
}

func (t paramTable) Headers() []string {
	return []string{"KEY", "TYPE", "SHAPE", "VALUE"}
}

func (t paramTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.records))
	for _, r := range t.records {
		value := "<none>"
		if r.Value != nil {
			value = r.Value.String()
		}
		if !t.full {
			value = truncate(value, maxCellWidth)
		}
		rows = append(rows, []string{r.Key, r.Type, scanm.Shape(r.Shape).String(), value})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func newParamsCmd(s *session) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "params <file>",
		Short: "List every header parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := scanm.Load(args[0], s.loadOptions()...)
			if err != nil {
				return err
			}

			records := make([]paramRecord, 0, h.Len())
			for key, e := range h.All() {
				records = append(records, paramRecord{
					Key:   key,
					Type:  e.Type.String(),
					Shape: e.Shape,
					Value: e.Value,
				})
			}

			if s.printer.Format() == output.FormatTable {
				return s.printer.Print(paramTable{records: records, full: full})
			}
			return s.printer.Print(records)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "do not shorten long values in table output")
	return cmd
}
