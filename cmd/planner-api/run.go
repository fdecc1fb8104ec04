package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apiserver "github.com/ahpgap/workforce-planner/internal/api_server"
	"github.com/ahpgap/workforce-planner/internal/archive"
	"github.com/ahpgap/workforce-planner/internal/config"
	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/ahpgap/workforce-planner/pkg/migrations"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the planner api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service...")
		defer zap.S().Info("API service stopped")

		zap.S().Info("Initializing data store")
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

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		producer := events.NewEventProducer(&events.StdoutWriter{}, events.WithOutputTopic(cfg.Service.EventsTopic))
		defer func() { _ = producer.Close() }()

		opts := []apiserver.ServerOption{apiserver.WithEventWriter(producer)}
		if cfg.Archive.Enabled() {
			a, err := newArchive(ctx, cfg)
			if err != nil {
				zap.S().Errorw("initializing report archive", "error", err)
				return err
			}
			opts = append(opts, apiserver.WithArchive(a))
		}

		generator := narrative.New(ctx, narrative.Config{
			APIKey: cfg.Narrative.APIKey,
			Model:  cfg.Narrative.Model,
		})

		apiListener, err := newListener(cfg.Service.Address)
		if err != nil {
			zap.S().Errorw("creating api listener", "error", err)
			return err
		}
		metricsListener, err := newListener(cfg.Service.MetricsAddress)
		if err != nil {
			_ = apiListener.Close()
			zap.S().Errorw("creating metrics listener", "error", err)
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			server := apiserver.New(cfg, s, apiListener, generator, opts...)
			return server.Run(gctx)
		})
		g.Go(func() error {
			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, metricsListener, s)
			return metricsServer.Run(gctx)
		})

		if err := g.Wait(); err != nil {
			zap.S().Errorw("server stopped with error", "error", err)
			return err
		}
		return nil
	},
}

func newArchive(ctx context.Context, cfg *config.Config) (*archive.MinioArchive, error) {
	a, err := archive.NewMinioArchive(
		archive.WithEndpoint(cfg.Archive.Endpoint),
		archive.WithBucket(cfg.Archive.Bucket),
		archive.WithRegion(cfg.Archive.Region),
		archive.WithAccessKey(cfg.Archive.AccessKey),
		archive.WithSecretKey(cfg.Archive.SecretKey),
		archive.WithSSL(cfg.Archive.UseSSL),
	)
	if err != nil {
		return nil, err
	}
	if err := a.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
