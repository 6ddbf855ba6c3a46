// Command distsurvey converts workplace environment measurement reports into
// distribution survey summaries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/distsurvey/config"
	"github.com/tsawler/distsurvey/internal/logging"
	"github.com/tsawler/distsurvey/source"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger

	// loader overrides the PDF backend; nil selects source.PDFLoader.
	loader source.Loader
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "distsurvey",
	Short: "Convert measurement result PDFs into distribution survey summaries",
	Long: `distsurvey reads a workplace environment measurement report (작업환경측정 결과표)
and writes the fixed-layout text summary used for the distribution survey
(분포실태 조사): work content, hazard factors and worker status per process.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML config file")

	rootCmd.AddCommand(convertCmd, tablesCmd, classifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
