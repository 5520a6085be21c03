package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spirithubcafe/spirithub/internal/api"
	"github.com/spirithubcafe/spirithub/internal/app/routing"
	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/health"
	"github.com/spirithubcafe/spirithub/internal/infra/postgres"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
	"github.com/spirithubcafe/spirithub/internal/infra/sqlite"
)

// Daemon is the long-running region edge process. It owns the preference
// store, the resolution pipeline, and the HTTP server, and tears them down
// in order on shutdown.
type Daemon struct {
	cfg        Config
	store      *prefstore.Store
	resolver   *routing.Resolver
	controller *routing.Controller
	checker    *health.Checker
	server     *api.Server
	httpSrv    *http.Server
}

// New wires a daemon from config. The preference store is best-effort: a
// backend that fails to open degrades to an in-process memory store rather
// than stopping the edge, because resolution must keep answering.
func New(cfg Config) (*Daemon, error) {
	if cfg.Region.Default != "" && !domain.IsRegionCode(cfg.Region.Default) {
		log.Printf("[daemon] ignoring unknown default region %q in config", cfg.Region.Default)
	}

	store := openStore(cfg.Store)
	resolver := routing.NewResolver(store)
	controller := routing.NewController(resolver, store, nil)

	server := api.NewServer(resolver, controller, store)
	if cfg.Telemetry.Prometheus {
		server.EnableMetrics()
	}
	if cfg.Geo.Enabled {
		server.EnableGeo()
	}

	checker := health.NewChecker(store, cfg.Store.Dir)
	server.SetHealth(checker)

	return &Daemon{
		cfg:        cfg,
		store:      store,
		resolver:   resolver,
		controller: controller,
		checker:    checker,
		server:     server,
	}, nil
}

// Serve runs the HTTP server until ctx is canceled, then shuts it down
// gracefully.
func (d *Daemon) Serve(ctx context.Context) error {
	go d.checker.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.cfg.API.Host, d.cfg.API.Port)
	d.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      d.server.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[daemon] region edge listening on %s (store: %s)", addr, d.store.Driver())
		if err := d.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[daemon] shutdown: %v", err)
	}
	return nil
}

// Close releases the preference store.
func (d *Daemon) Close() error {
	return d.store.Close()
}

// ─── Wiring ─────────────────────────────────────────────────────────────────

// openStore picks a backend per config and degrades on failure. Postgres is
// selected explicitly or by the presence of DATABASE_URL; the default is a
// local sqlite file under the data dir.
func openStore(cfg StoreConfig) *prefstore.Store {
	if cfg.Driver == "postgres" || os.Getenv("DATABASE_URL") != "" {
		db, err := postgres.Open(context.Background())
		if err == nil {
			return prefstore.New(db, "postgres")
		}
		log.Printf("[daemon] postgres unavailable, falling back: %v", err)
	}

	db, err := sqlite.Open(cfg.Dir)
	if err == nil {
		return prefstore.New(db, "sqlite")
	}
	log.Printf("[daemon] sqlite unavailable, using memory store: %v", err)

	return prefstore.New(prefstore.NewMemory(), "memory")
}
