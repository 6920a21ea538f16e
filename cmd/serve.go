package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/baccarat-tracker/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker over HTTP (JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.BindPFlag(keyHTTPAddr, cmd.Flags().Lookup(flagAddr)); err != nil {
				return err
			}
			addr := app.cfg.GetString(keyHTTPAddr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := httpapi.NewHandler(app.newTracker(), app.logger)
			router := httpapi.NewRouter(handler, app.logger, httpapi.RouterOptions{AllowedOrigins: origins})
			return httpapi.NewServer(addr, router, app.logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().String(flagAddr, defaultHTTPAddr, "Listen address; env BT_HTTP_ADDR")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "Allowed CORS origins (default *)")

	return cmd
}
