package main

import (
	"github.com/btjones-me/llm-browser-use/agent/replayengine"
	"github.com/btjones-me/llm-browser-use/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		engine := replayengine.New(cfg.ReplayPath, logger)
		return web.NewServer(cfg, engine, logger).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, \":8501\")")
}
