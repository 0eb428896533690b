// Package bootstrap wires a configured editor session together with its
// logger, keymap, metrics and optional metrics endpoint. It is shared by the
// command line driver and both graphical frontends.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/internal/metrics"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Env is a ready-to-use session and the collaborators built for it
type Env struct {
	Config   config.Config
	Logger   *slog.Logger
	Session  *editor.Session
	Metrics  *metrics.Recorder
	Registry *prometheus.Registry
}

// Option adds editor options on top of the configured ones
type Option func(*[]editor.Option)

// WithEditorOptions appends session options, e.g. an initial viewport
func WithEditorOptions(opts ...editor.Option) Option {
	return func(o *[]editor.Option) { *o = append(*o, opts...) }
}

// New validates cfg and builds the session. The global geometry tolerance
// is set from cfg. When withMetrics is true a private registry is created
// and the session records into it.
func New(cfg config.Config, withMetrics bool, opts ...Option) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	env := &Env{Config: cfg, Logger: logging.New(level)}

	if err := geometry.SetTolerance(cfg.Tolerance); err != nil {
		return nil, err
	}

	edOpts := []editor.Option{editor.WithLogger(env.Logger)}
	if cfg.Keymap != "" {
		km, err := keymap.Load(cfg.Keymap)
		if err != nil {
			return nil, err
		}
		edOpts = append(edOpts, editor.WithKeymap(km))
	}
	if withMetrics {
		env.Registry = prometheus.NewRegistry()
		env.Metrics, err = metrics.New(env.Registry)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		edOpts = append(edOpts, editor.WithMetrics(env.Metrics))
	}
	for _, opt := range opts {
		opt(&edOpts)
	}
	env.Session = editor.NewSession(edOpts...)
	return env, nil
}

// MetricsHandler serves the registry in the Prometheus exposition format
func (e *Env) MetricsHandler() http.Handler {
	if e.Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(e.Registry, promhttp.HandlerOpts{})
}

// Start launches the background work the config asks for: the keymap
// watcher and the metrics endpoint. Both stop when ctx is cancelled.
// Failures are logged, not returned, so a frontend keeps running without
// them.
func (e *Env) Start(ctx context.Context) {
	if e.Config.WatchKeymap && e.Config.Keymap != "" {
		go func() {
			if err := e.Session.WatchKeymap(ctx, e.Config.Keymap); err != nil {
				e.Logger.Warn("keymap watcher stopped", "path", e.Config.Keymap, "error", err)
			}
		}()
	}
	if e.Config.MetricsAddr != "" && e.Registry != nil {
		go e.serveMetrics(ctx)
	}
}

func (e *Env) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.MetricsHandler())
	srv := &http.Server{
		Addr:              e.Config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	e.Logger.Info("serving metrics", "addr", e.Config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Warn("metrics endpoint stopped", "error", err)
	}
}
