package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumiere/internal/config"
	"lumiere/internal/db"
	"lumiere/internal/llm"
	"lumiere/internal/logging"
	"lumiere/internal/menu"
	"lumiere/internal/order"
	"lumiere/internal/recommend"
	"lumiere/internal/router"
	"lumiere/internal/session"
	"lumiere/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── CATALOG ─────────────────────────
	catalog, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ catalog load failed")
	}
	if cfg.R2.PublicBaseURL != "" {
		base := cfg.R2.PublicBaseURL
		catalog = catalog.WithImageResolver(func(ref string) string {
			return storage.PublicURL(base, ref)
		})
	}
	log.WithFields(logrus.Fields{
		"source": cfg.Catalog.Source,
		"items":  catalog.Len(),
	}).Info("✅ catalog loaded")

	// ───────────────────────── LLM ─────────────────────────
	var recommender *recommend.Service
	client, err := llm.NewFromConfig(cfg.LLM)
	if err != nil {
		log.WithError(err).Warn("⚠️ llm disabled, recommendations will use the fallback")
		recommender = recommend.NewService(nil, cfg.Restaurant, log)
	} else {
		recommender = recommend.NewService(client, cfg.Restaurant, log)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	sessions := session.NewStore(cfg.Session.TTL)
	tokens, err := session.NewTokens(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		log.WithError(err).Fatal("❌ session tokens")
	}
	if cfg.Session.Secret == "" {
		log.Warn("⚠️ SESSION_SECRET not set, sessions will not survive a restart")
	}
	go sessions.Run(ctx, time.Minute, log)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Catalog:     catalog,
		Sessions:    sessions,
		Tokens:      tokens,
		Recommender: recommender,
		Destination: order.Destination{
			BaseURL:    cfg.Handoff.BaseURL,
			Number:     cfg.Handoff.Destination,
			Restaurant: cfg.Restaurant,
		},
		CORSOrigins: cfg.CORSOrigin,
		Logger:      log,
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("🚀 API running at http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("❌ server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// --------------------------------------------------
func loadCatalog(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*menu.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		pool, err := db.Connect(ctx, cfg.DB.URL)
		if err != nil {
			return nil, err
		}
		// the catalog is read once, so the pool is not kept around
		defer pool.Close()
		log.Info("✅ Connected to PostgreSQL")
		return menu.Load(ctx, menu.NewPostgresRepository(pool))

	case config.SourceR2:
		r2, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		return menu.Load(ctx, menu.NewObjectSource(r2, cfg.R2.CatalogKey))
	}

	return menu.Load(ctx, menu.NewStaticSource(menu.DefaultItems()))
}
