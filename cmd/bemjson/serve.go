package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/bemjson/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP build server",
	Long: `Serves POST /build, GET /health, GET /info and GET /metrics.
The OpenAPI contract is served at GET /openapi.yaml, with a browser view at GET /swagger.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		logger := loggerFor(opts)

		srv, err := cli.NewServer(opts, net.JoinHostPort(host, port), logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.Serve(ctx, srv, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("host", "", "Interface to bind (default: all)")
}
