// Package cli implements the costcorrect command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/costcorrect/costcorrect/internal/client"
	"github.com/costcorrect/costcorrect/internal/config"
	applog "github.com/costcorrect/costcorrect/internal/log"
	"github.com/costcorrect/costcorrect/internal/theme"
	"github.com/costcorrect/costcorrect/internal/tui"
	"github.com/costcorrect/costcorrect/internal/tui/app"
)

var rootCmd = &cobra.Command{
	Use:   "costcorrect",
	Short: "Turn a floor plan into a bill of quantities",
	Long: `CostCorrect uploads a floor plan to the analysis service and presents
the resulting bill of quantities: bricks, cement, and sand, with
SANS-aligned wastage, and optional price estimates for Pro accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := applog.NewLogger(config.Dir())

		themes := theme.NewManager(theme.NewStore(config.Dir()))
		themes.Init()

		c := client.New(cfg.Service.BaseURL, config.APIToken())
		return tui.Run(app.New(cfg, c, themes, logger))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the user's config, seeding the default one on first
// run. A malformed file degrades to defaults rather than blocking the UI.
func loadConfig() *config.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg, err := config.ReadConfig(home)
	if err != nil {
		cfg = config.DefaultConfig()
		_ = config.WriteConfig(home, cfg)
	}
	return cfg
}
