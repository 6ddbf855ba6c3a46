package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/distsurvey/source"
)

var tablesCmd = &cobra.Command{
	Use:   "tables <report.pdf>",
	Short: "Dump the raw extracted table rows as TSV",
	Long: `Prints every row the table detector produced, one line per row with cells
separated by tabs. Each table is introduced by a "# page N table M" line.
Use it to check which columns the process, unit and factor cells land in.`,
	Args: cobra.ExactArgs(1),
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().IntSliceVar(&pageList, "pages", nil, "Pages to read (1-indexed, comma separated)")
}

func runTables(cmd *cobra.Command, args []string) error {
	l := loader
	if l == nil {
		l = &source.PDFLoader{
			Pages:          pageList,
			ExcludeHeaders: cfg.Source.ExcludeHeaders,
			ExcludeFooters: cfg.Source.ExcludeFooters,
			Detector:       cfg.DetectorConfig(),
			Logger:         logger,
		}
	}

	doc, err := l.Load(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	for _, p := range doc.Pages {
		for ti, t := range p.Tables {
			fmt.Fprintf(out, "# page %d table %d\n", p.Number, ti+1)
			for _, row := range t {
				cells := make([]string, len(row))
				for i, c := range row {
					cells[i] = strings.NewReplacer("\t", " ", "\n", " ").Replace(c)
				}
				fmt.Fprintln(out, strings.Join(cells, "\t"))
			}
		}
	}
	return nil
}
