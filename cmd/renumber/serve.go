package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/renumber/internal/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/renumber over HTTP",
		Long: `Starts an HTTP server exposing the renumberer.

  POST /v1/renumber   {"text": "...", "format": "text|html"}
  GET  /health, /ready, /live

Settings come from the http_server section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hc := a.cfg.HTTPServer
			if cmd.Flags().Changed("port") {
				hc.Port = port
			}

			srv, err := httpserver.New(a.logger, httpserver.Config{
				Port:            hc.Port,
				Mode:            hc.Mode,
				MaxBodyBytes:    hc.MaxBodyBytes,
				RateLimitPerMin: hc.RateLimitPerMin,
			})
			if err != nil {
				return err
			}

			a.logger.Info("starting HTTP server", zap.Int("port", hc.Port), zap.String("mode", hc.Mode))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides http_server.port)")
	return cmd
}
