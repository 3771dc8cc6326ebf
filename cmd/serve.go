package cmd

import (
	"os"
	"os/signal"
	"syscall"

	httpserver "github.com/bnema/nextlevel-elevator/internal/adapters/http"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dispatch HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serverCfg := app.cfg.Server
			if addr != "" {
				serverCfg.Addr = addr
			}

			handler := httpserver.NewHandler(app.service, app.logger, httpserver.Options{
				CORSOrigins: serverCfg.CORSOrigins,
			})
			srv := httpserver.NewServer(httpserver.ServerConfig{
				Addr:         serverCfg.Addr,
				ReadTimeout:  serverCfg.ReadTimeout,
				WriteTimeout: serverCfg.WriteTimeout,
			}, handler)

			return httpserver.Run(ctx, srv, serverCfg.ShutdownTimeout, app.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}
