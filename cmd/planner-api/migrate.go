package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahpgap/workforce-planner/internal/config"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/ahpgap/workforce-planner/pkg/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting migrations...")
		defer zap.S().Info("Db migrated")

		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Errorw("initializing data store", "error", err)
			return err
		}

		s := store.NewStore(db)
		defer s.Close()

		if err := migrations.MigrateStore(db, cfg); err != nil {
			zap.S().Errorw("running migrations", "error", err)
			return err
		}

		return nil
	},
}
