package main

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/KirkDiggler/holidayhub/internal/handlers/gateway"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg *Config) *cobra.Command {
	var (
		bind    string
		port    int
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket gateway and photo server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 1 || port > 65535 {
				return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", port)
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				server, err := gateway.New(&gateway.Config{
					Subscriber:     a.notifier,
					Presence:       a.presence,
					Photos:         a.photos,
					AllowedOrigins: origins,
				})
				if err != nil {
					return err
				}

				addr := net.JoinHostPort(bind, strconv.Itoa(port))
				log.Info().Str("addr", addr).Str("redis", cfg.redisAddr).Msg("starting gateway")

				return server.ListenAndServe(ctx, addr)
			})(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&bind, "bind", "b", "0.0.0.0", "address to bind to")
	fs.IntVarP(&port, "port", "p", 8080, "port to listen on")
	fs.StringSliceVar(&origins, "allowed-origin", nil, "allowed CORS origin, repeatable; all when unset")

	return cmd
}
