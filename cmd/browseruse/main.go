package main

import (
	"fmt"
	"os"

	"github.com/btjones-me/llm-browser-use/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "browseruse",
	Short: "Demonstration UI for an LLM-driven browser automation agent",
	Long: `browseruse takes a natural-language task, hands it to a browser
automation agent engine together with a configured LLM client, and renders
the run's step history, extracted content, and sped-up replay GIF.

The built-in engine replays recorded runs (see --replay); a live automation
engine is plugged in the same way through the agent.Engine interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level, in console format")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the process-wide configuration and logger. The .env file is
// folded into the environment first so credentials can live next to the
// binary, as the agent engines expect.
func setup() (*config.Config, *zap.Logger, error) {
	_ = godotenv.Load()
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	var logger *zap.Logger
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
