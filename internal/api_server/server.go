package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/archive"
	"github.com/ahpgap/workforce-planner/internal/config"
	"github.com/ahpgap/workforce-planner/internal/dataset"
	handlers "github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/internal/util"
	"github.com/ahpgap/workforce-planner/pkg/metrics"
	"github.com/ahpgap/workforce-planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg       *config.Config
	store     store.Store
	listener  net.Listener
	generator narrative.Generator
	archive   archive.Archive
	events    service.EventWriter
}

type ServerOption func(*Server)

// WithArchive uploads reports that ask for it to a.
func WithArchive(a archive.Archive) ServerOption {
	return func(s *Server) {
		s.archive = a
	}
}

func WithEventWriter(w service.EventWriter) ServerOption {
	return func(s *Server) {
		s.events = w
	}
}

// New returns a new instance of a workforce planner server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
	generator narrative.Generator,
	opts ...ServerOption,
) *Server {
	s := &Server{
		cfg:       cfg,
		store:     store,
		listener:  listener,
		generator: generator,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func oapiErrorHandler(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Message: fmt.Sprintf("API Error: %s", message)})
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")
	swagger, err := api.GetSwagger()
	if err != nil {
		return fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Skip server name validation
	swagger.Servers = nil

	oapiOpts := oapimiddleware.Options{
		ErrorHandler: oapiErrorHandler,
	}

	d, err := dataset.Default()
	if err != nil {
		return fmt.Errorf("failed to load reference dataset: %w", err)
	}

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		util.GatewayApiRewrite,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.CorsOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Content-Disposition", handlers.ArchiveKeyHeader},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/v1/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Spec())
	})

	projectionSrv := service.NewProjectionService(d, s.cfg.Service.BaseYear)
	narrativeSrv := service.NewNarrativeService(s.generator, projectionSrv, s.events)
	h := handlers.NewServiceHandler(
		service.NewDatasetService(d, projectionSrv.BaseYear()),
		projectionSrv,
		narrativeSrv,
		service.NewRunService(s.store, projectionSrv, narrativeSrv, s.events),
		service.NewReportService(projectionSrv, s.archive, s.events),
		s.cfg.Service.MaxProjectionYears,
	)

	router.Group(func(r chi.Router) {
		r.Use(oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapiOpts))
		handlers.HandlerFromMux(h, r)
	})

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
