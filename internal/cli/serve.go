package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"veridex/internal/checker"
	"veridex/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the claim-checking HTTP server",
	Long: `Serve exposes the checker over HTTP:

  POST /ask        {"claim": "..."} -> verdict with confidence
  GET  /health     liveness probe
  GET  /v1/models  current model configuration

Example:
  veridex serve
  veridex serve --addr 127.0.0.1:9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config, default :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg := buildRegistry(cfg)
	chk, err := checker.New(cfg, reg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return server.New(addr, chk, reg).Run()
}
