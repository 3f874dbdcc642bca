package main

import (
	"errors"
	"fmt"

	"github.com/btjones-me/llm-browser-use/agent"
	"github.com/btjones-me/llm-browser-use/agent/replayengine"
	"github.com/btjones-me/llm-browser-use/browser"
	"github.com/btjones-me/llm-browser-use/gifx"
	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/llm"
	"github.com/btjones-me/llm-browser-use/render"
	"github.com/btjones-me/llm-browser-use/utils/iox"
	"github.com/btjones-me/llm-browser-use/utils/printx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FastGIFPath is where the sped-up replay GIF is written after a run.
const FastGIFPath = "agent_history_fast.gif"

var (
	runTask       string
	runProvider   string
	runUseVision  bool
	runUseBrowser bool
	runReplayPath string
	runShowDebug  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one task and print the reconciled step history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		if runProvider != "" {
			cfg.Provider = runProvider
		}
		if runReplayPath != "" {
			cfg.ReplayPath = runReplayPath
		}

		provider, err := llm.ParseProvider(cfg.Provider)
		if err != nil {
			return err
		}
		model, err := llm.NewChatModel(provider, &llm.ClientOptions{
			OpenAIAPIKey: cfg.OpenAIAPIKey,
			GoogleAPIKey: cfg.GoogleAPIKey,
		})
		if err != nil {
			return err
		}

		options := agent.Options{
			Task:      runTask,
			Model:     model,
			UseVision: runUseVision,
		}
		if runUseBrowser {
			session, err := browser.NewSession(cmd.Context(), &browser.Options{
				RunHeadful: cfg.RunHeadful,
				ChromePath: cfg.ChromePath,
			}, logger)
			if err != nil {
				return fmt.Errorf("failed to start browser session: %w", err)
			}
			defer session.Close()
			options.Session = session
		}

		engine := replayengine.New(cfg.ReplayPath, logger)
		invoker := agent.NewInvoker(engine, history.ReconcileOptions{StrictErrors: cfg.StrictErrors}, logger)
		renderer := render.NewRenderer()

		outcome, err := invoker.Invoke(cmd.Context(), options)
		if err != nil {
			var validationErr *agent.ValidationError
			if errors.As(err, &validationErr) {
				return err
			}
			printx.PrintStandardHeader("RESULT")
			fmt.Println(renderer.FailureBanner(err))
			writeFastGIF(cfg.GIFSpeedFactor, "Task execution before failure", logger)
			return err
		}

		printx.PrintStandardHeader("RESULT")
		fmt.Println(renderer.Banner(outcome))
		if len(outcome.Steps) > 0 {
			printx.PrintStandardHeader("STEPS")
			fmt.Println(renderer.Steps(outcome))
		}
		if runShowDebug {
			if debug, err := renderer.Debug(outcome); err == nil {
				printx.PrintStandardHeader("DEBUG")
				fmt.Println(debug)
			}
		}
		writeFastGIF(cfg.GIFSpeedFactor, "Task execution", logger)
		return nil
	},
}

// writeFastGIF speeds up the engine's GIF artifact when one exists. Decode
// failures are reported and swallowed: the rendered outcome stands on its
// own.
func writeFastGIF(speedFactor int, label string, logger *zap.Logger) {
	if !iox.FileExists(agent.HistoryGIFPath) {
		return
	}
	data, err := gifx.SpeedUp(agent.HistoryGIFPath, speedFactor)
	if err != nil {
		logger.Warn("failed to speed up history gif", zap.Error(err))
		fmt.Printf("Could not process the replay GIF: %v\n", err)
		return
	}
	if err := iox.WriteBytesToFile(FastGIFPath, data); err != nil {
		logger.Warn("failed to write sped-up gif", zap.Error(err))
		return
	}
	fmt.Printf("%s (%dx speed): %s\n", label, speedFactor, FastGIFPath)
}

func init() {
	runCmd.Flags().StringVarP(&runTask, "task", "t", "", "natural-language description of the task (required)")
	runCmd.Flags().StringVar(&runProvider, "provider", "", `LLM provider, one of ["gemini", "openai"]`)
	runCmd.Flags().BoolVar(&runUseVision, "vision", false, "let the engine send screenshots to the model")
	runCmd.Flags().BoolVar(&runUseBrowser, "use-browser", false, "run against a launched browser session instead of the engine's own")
	runCmd.Flags().StringVar(&runReplayPath, "replay", "", "recorded-run JSON file for the replay engine")
	runCmd.Flags().BoolVar(&runShowDebug, "debug", false, "print the raw history bundle")
	_ = runCmd.MarkFlagRequired("task")
}
