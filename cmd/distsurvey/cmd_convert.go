package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/distsurvey"
)

var (
	outputPath     string
	pageList       []int
	excludeHeaders bool
	excludeFooters bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <report.pdf>",
	Short: "Write the distribution survey summary of a report",
	Long: `Extracts the tables of the report, reconstructs processes and units and
prints the summary text. Missing company or project names are replaced by
placeholders and reported as warnings.

Example:
  distsurvey convert 측정결과.pdf -o 분포실태_결과.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the summary to this file instead of stdout")
	convertCmd.Flags().IntSliceVar(&pageList, "pages", nil, "Pages to read (1-indexed, comma separated)")
	convertCmd.Flags().BoolVar(&excludeHeaders, "exclude-headers", false, "Drop running page headers before table detection")
	convertCmd.Flags().BoolVar(&excludeFooters, "exclude-footers", false, "Drop running page footers before table detection")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	conv := distsurvey.Open(path).WithConfig(cfg).WithLogger(logger)
	if len(pageList) > 0 {
		conv = conv.Pages(pageList...)
	}
	if excludeHeaders {
		conv = conv.ExcludeHeaders()
	}
	if excludeFooters {
		conv = conv.ExcludeFooters()
	}
	if loader != nil {
		conv = conv.WithLoader(loader)
	}

	text, warnings, err := conv.Text()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.Message, zap.Stringer("code", w.Code))
	}

	if outputPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("summary written", zap.String("output", outputPath))
	return nil
}
