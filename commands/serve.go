package commands

import (
	"github.com/spf13/cobra"

	"github.com/dialworks/campaign-sheets/config"
	"github.com/dialworks/campaign-sheets/httpd"
)

var serveOptions = struct {
	addr string
}{}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr <address>]",
	Short: "Runs the report upload web UI",
	Long: `Serves the operator upload form: pick a worksheet, update type and day of
the week, upload one or more report files and review the per-file and per-row
status notices. Prometheus metrics are exposed at /metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveOptions.addr, "addr", "", "Listen address (defaults to HTTP_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	if serveOptions.addr != "" {
		cfg.Addr = serveOptions.addr
	}

	server, err := httpd.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
