package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/logging"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/kerbaras/pokedex/pkg/sources"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// session wires the controller and everything it depends on for one run.
type session struct {
	ctrl    *services.CatalogController
	repo    *data.Repository
	favs    *data.Favorites
	logger  *log.Logger
	closers []io.Closer
}

// openSession builds a session from cfg. The TUI logs to the log file; CLI
// commands log warnings and errors to stderr.
func openSession(cmd *cobra.Command, tui bool) (*session, error) {
	s := &session{}

	if tui {
		logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel, "pokedex")
		if err != nil {
			return nil, err
		}
		s.logger = logger
		s.closers = append(s.closers, closer)
	} else {
		level := "warn"
		if cmd.Flags().Changed("log-level") {
			level = cfg.LogLevel
		}
		s.logger = logging.New(cmd.ErrOrStderr(), level, "pokedex")
	}

	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.repo = repo
	s.closers = append(s.closers, repo)

	if cfg.MetricsAddr != "" {
		s.closers = append(s.closers, serveMetrics(cfg.MetricsAddr, s.logger))
	}

	s.favs = data.LoadFavorites(repo, s.logger)
	source := sources.NewPokeAPI(cfg.APIBase, cfg.RequestTimeout)
	s.ctrl = services.NewCatalogController(services.ControllerConfig{
		Max:       cfg.Max,
		PerPage:   cfg.PerPage,
		BatchSize: cfg.BatchSize,
		Debounce:  cfg.Debounce,
	}, source, s.favs, s.logger)

	s.logger.Info("session opened", "api", cfg.APIBase, "db", cfg.DBPath, "max", cfg.Max)
	return s, nil
}

// load runs the initial load; a partial load is not an error.
func (s *session) load(ctx context.Context) error {
	return s.ctrl.Load(ctx)
}

func (s *session) Close() {
	if s.ctrl != nil {
		s.ctrl.Close()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && s.logger != nil {
			s.logger.Warn("close failed", "err", err)
		}
	}
}

type metricsServer struct {
	srv *http.Server
}

func serveMetrics(addr string, logger *log.Logger) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	return &metricsServer{srv: srv}
}

func (m *metricsServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.srv.Shutdown(ctx)
}
