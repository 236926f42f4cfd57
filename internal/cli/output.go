package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/diegoclair/absence-report/internal/report"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatXLSX  = "xlsx"
	formatJSON  = "json"
)

type outputFlags struct {
	format string
	output string
	sheet  string
}

func (o *outputFlags) register(cmd *cobra.Command, sheet string) {
	cmd.Flags().StringVarP(&o.format, "format", "f", formatTable, "output format (table, csv, xlsx, json)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout")
	o.sheet = sheet
}

func (o *outputFlags) validate() error {
	switch o.format {
	case formatTable, formatCSV, formatXLSX, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid --format %q, use table, csv, xlsx or json", o.format)
	}
}

// write renders header and rows, or body when the format is json
func (o *outputFlags) write(cmd *cobra.Command, header []string, rows [][]string, body interface{}) error {
	w := cmd.OutOrStdout()
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", o.output, err)
		}
		defer f.Close()
		w = f
	}

	switch o.format {
	case formatCSV:
		return report.WriteCSV(w, header, rows)
	case formatXLSX:
		return report.WriteXLSX(w, o.sheet, header, rows)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(body)
	default:
		return writeTable(w, header, rows)
	}
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
