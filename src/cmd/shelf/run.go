package main

import (
	"github.com/spf13/cobra"

	"bookshelf/src/cmd/shelf/menucmd"
	"bookshelf/src/internal/config"
)

func newRunCmd() *cobra.Command {
	return menucmd.New(loadConfig)
}

// loadConfig reads SHELF_* env vars, then applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("log-dir", &cfg.LogDir)
	override("log-level", &cfg.LogLevel)
	override("log-format", &cfg.LogFormat)
	override("list-format", &cfg.ListFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
