package cli

import (
	"github.com/spf13/cobra"

	"github.com/costcorrect/costcorrect/internal/config"
	applog "github.com/costcorrect/costcorrect/internal/log"
	"github.com/costcorrect/costcorrect/internal/server"
)

var (
	serveAddr string
	serveTier string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled stub analysis service",
	Long: `Runs a local stand-in for the hosted analysis service. It accepts the
same uploads and returns a deterministic bill of quantities derived from
the file size, so the client can be developed and tested offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if serveAddr != "" {
			cfg.Serve.Addr = serveAddr
		}

		logger := applog.NewLogger(config.Dir())
		return server.New(cfg.Serve, serveTier, logger).Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveTier, "tier", "free", "tier reported to clients (free or pro)")
	rootCmd.AddCommand(serveCmd)
}
