package commands

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-scanm/internal/cli/output"
	"github.com/robert-malhotra/go-scanm/scanm"
)

// summaryView is the machine-readable form of the summary command.
type summaryView struct {
	Path      string          `json:"path" yaml:"path"`
	PreHeader preHeaderView   `json:"pre_header" yaml:"pre_header"`
	Settings  []settingRecord `json:"settings" yaml:"settings"`
}

type preHeaderView struct {
	FileTypeID               string `json:"file_type_id" yaml:"file_type_id"`
	GUID                     string `json:"guid" yaml:"guid"`
	HeaderSizeBytes          uint64 `json:"header_size_bytes" yaml:"header_size_bytes"`
	HeaderLengthInValuePairs uint64 `json:"header_length_in_value_pairs" yaml:"header_length_in_value_pairs"`
	HeaderStartBytes         uint64 `json:"header_start_bytes" yaml:"header_start_bytes"`
	PixelDataLengthBytes     uint64 `json:"pixel_data_length_bytes" yaml:"pixel_data_length_bytes"`
	AnalogDataLengthBytes    uint64 `json:"analog_data_length_bytes" yaml:"analog_data_length_bytes"`
}

type settingRecord struct {
	Section string `json:"section" yaml:"section"`
	Label   string `json:"label" yaml:"label"`
	Value   string `json:"value" yaml:"value"`
}

func newSummaryCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Print the pre-header and main acquisition settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := scanm.Load(args[0], s.loadOptions()...)
			if err != nil {
				return err
			}
			view := newSummaryView(h)
			if s.printer.Format() == output.FormatTable {
				return output.KeyValueTable(cmd.OutOrStdout(), view.pairs())
			}
			return s.printer.Print(view)
		},
	}
}

func newSummaryView(h *scanm.Header) summaryView {
	pre := h.PreHeader()
	v := summaryView{
		Path: h.Path(),
		PreHeader: preHeaderView{
			FileTypeID:               pre.FileTypeID,
			GUID:                     h.GUID(),
			HeaderSizeBytes:          pre.HeaderSizeBytes,
			HeaderLengthInValuePairs: pre.HeaderLengthInValuePairs,
			HeaderStartBytes:         pre.HeaderStartBytes,
			PixelDataLengthBytes:     pre.PixelDataLengthBytes,
			AnalogDataLengthBytes:    pre.AnalogDataLengthBytes,
		},
	}
	for _, f := range h.Summary() {
		v.Settings = append(v.Settings, settingRecord(f))
	}
	return v
}

// pairs flattens the view for the key/value table. The section name is
// printed on the first row of each section only.
func (v summaryView) pairs() [][2]string {
	p := v.PreHeader
	out := [][2]string{
		{"File", v.Path},
		{"Type", p.FileTypeID},
		{"GUID", p.GUID},
		{"Header size", humanize.Bytes(p.HeaderSizeBytes)},
		{"Value pairs", humanize.Comma(int64(p.HeaderLengthInValuePairs))},
		{"Pixel data", humanize.Bytes(p.PixelDataLengthBytes)},
		{"Analog data", humanize.Bytes(p.AnalogDataLengthBytes)},
	}

	section := ""
	for _, f := range v.Settings {
		label := f.Label
		if f.Section != section {
			section = f.Section
			label = f.Section + ": " + f.Label
		}
		out = append(out, [2]string{label, f.Value})
	}
	return out
}
