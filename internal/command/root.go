// Package command holds the CLI entry points of the backend.
package command

import (
	"fmt"
	"os"

	"github.com/danevairena/SocialMediaBackend/internal/config"
	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/danevairena/SocialMediaBackend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const AppName = "social-backend"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Social media backend",
		Long:          "HTTP backend for follows, likes, comments, notifications and direct messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		NewServeCmd(),
		NewMigrateCmd(),
		NewSeedCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}

// runtime is what every subcommand needs before doing real work.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func setup() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(log)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func (r *runtime) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = r.log.Sync()
}
