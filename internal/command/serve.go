package command

import (
	"os/signal"
	"syscall"

	"github.com/danevairena/SocialMediaBackend/internal/bootstrap"
	"github.com/danevairena/SocialMediaBackend/internal/server"
	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			if !skipMigrate {
				if err := bootstrap.Migrate(rt.db); err != nil {
					return err
				}
			}
			if rt.cfg.IsDevelopment() {
				if _, err := bootstrap.SeedDemoData(rt.db, rt.log); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var redisClient *redis.Client
			if rt.cfg.RedisURL != "" {
				redisClient, err = database.ConnectRedis(ctx, rt.cfg.RedisURL)
				if err != nil {
					// fan-out falls back to in-process delivery
					rt.log.Warn("redis unavailable, notification queue disabled", zap.Error(err))
					redisClient = nil
				} else {
					defer redisClient.Close()
				}
			}

			return server.NewServer(rt.cfg, rt.db, redisClient, rt.log).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run schema migration on startup")
	return cmd
}

