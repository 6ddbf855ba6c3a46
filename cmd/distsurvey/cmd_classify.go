package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <factor>...",
	Short: "Print the hazard category of factor names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	c := cfg.Classifier()
	out := cmd.OutOrStdout()
	for _, tok := range args {
		cat, ok := c.Classify(tok)
		if !ok {
			fmt.Fprintf(out, "%s\t-\n", tok)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", tok, cat)
	}
	return nil
}
