package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"roleradar-dashboard/internal/apiclient"
	"roleradar-dashboard/internal/config"
	"roleradar-dashboard/internal/dashboard"
	"roleradar-dashboard/internal/events"
	"roleradar-dashboard/internal/format"
	"roleradar-dashboard/internal/httpapi"
	"roleradar-dashboard/internal/logging"
	"roleradar-dashboard/internal/scheduler"
	"roleradar-dashboard/internal/store"
	"roleradar-dashboard/internal/view"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional.
	_ = godotenv.Load()

	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", cfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)

	log := logging.New(cfg.App.LogLevel)
	defer func() { _ = log.Sync() }()

	for _, w := range vr.Warnings {
		log.Warn("config warning", "path", cfgPath, "msg", w)
	}
	if !vr.OK() {
		return fmt.Errorf("config invalid (%s): %w", cfgPath, vr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var backend httpapi.Backend
	if cfg.Backend.Embedded {
		dbPath := cfg.Backend.DBPath
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(dataDir, dbPath)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store %s: %w", dbPath, err)
		}
		defer st.Close()
		if cfg.Backend.SeedDemo {
			seeded, err := st.SeedDemo(ctx)
			if err != nil {
				return fmt.Errorf("seed store: %w", err)
			}
			if seeded {
				log.Info("seeded demo data", "db", dbPath)
			}
		}
		backend = st
	}

	page, err := view.NewShell()
	if err != nil {
		return fmt.Errorf("parse page shell: %w", err)
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.RequestTimeout(),
		Limiter: apiclient.NewHostLimiter(cfg.API.RatePerSecond, cfg.API.Burst),
	})
	if err != nil {
		return err
	}

	hub := events.NewHub()
	renderer := dashboard.New(client, page, dashboard.Options{
		CompanyLimit:     cfg.Refresh.CompanyLimit,
		OpportunityLimit: cfg.Refresh.OpportunityLimit,
		Locale: format.Locale{
			Location:       cfg.Location(),
			DateLayout:     cfg.Display.DateLayout,
			DateTimeLayout: cfg.Display.DateTimeLayout,
		},
		Publisher: hub,
		Log:       log.With("component", "dashboard"),
	})

	srv := &http.Server{
		Handler: httpapi.NewRouter(httpapi.Deps{
			Log:        log.With("component", "http"),
			Hub:        hub,
			Page:       page,
			Refresher:  renderer,
			RefreshCtx: ctx,
			Backend:    backend,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		// SSE streams end when the process is asked to stop.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Listen before the first refresh so the embedded API is reachable.
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	log.Info("dashboard listening",
		"addr", "http://"+ln.Addr().String(),
		"api", cfg.API.BaseURL,
		"embedded", cfg.Backend.Embedded,
		"config", cfgPath)

	sched := scheduler.New("dashboard-refresh", cfg.Interval(), refreshTask(renderer), scheduler.WithLogger(log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// refreshTask never fails: loader failures already went to the
// renderer's reporter and would otherwise be logged a second time.
func refreshTask(r httpapi.Refresher) scheduler.Task {
	return func(ctx context.Context) error {
		r.Refresh(ctx)
		return nil
	}
}
