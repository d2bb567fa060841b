package main

import (
	"context"
	"flag"
	"os"
	"time"

	"lumiere/internal/config"
	"lumiere/internal/db"
	"lumiere/internal/logging"
	"lumiere/internal/menu"
	"lumiere/internal/storage"

	"github.com/sirupsen/logrus"
)

// catalog-sync publishes the built-in menu to Postgres and/or R2 so the API
// can serve it with CATALOG_SOURCE=postgres or CATALOG_SOURCE=r2.
func main() {
	skipDB := flag.Bool("skip-db", false, "do not write to Postgres")
	skipR2 := flag.Bool("skip-r2", false, "do not upload to R2")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items := menu.DefaultItems()
	if err := menu.ValidateItems(items); err != nil {
		log.WithError(err).Fatal("❌ built-in catalog is invalid")
	}

	log.Info("🧠 catalog sync starting...")
	synced := 0

	// ───────────────────────── POSTGRES ─────────────────────────
	if *skipDB || cfg.DB.URL == "" {
		log.Info("Note: DATABASE_URL not set or skipped, Postgres untouched")
	} else if err := syncPostgres(ctx, cfg.DB.URL, items); err != nil {
		log.WithError(err).Error("⚠️ postgres sync failed")
	} else {
		synced++
		log.WithField("items", len(items)).Info("✅ Postgres catalog updated")
	}

	// ───────────────────────── R2 ─────────────────────────
	if *skipR2 || !cfg.R2.Configured() {
		log.Info("Note: R2 not configured or skipped, bucket untouched")
	} else if url, err := syncR2(ctx, cfg.R2, items); err != nil {
		log.WithError(err).Error("⚠️ r2 sync failed")
	} else {
		synced++
		log.WithField("url", url).Info("✅ R2 catalog uploaded")
	}

	if synced == 0 {
		log.Warn("nothing was synced")
		os.Exit(1)
	}
}

func syncPostgres(ctx context.Context, dsn string, items []menu.Item) error {
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.InitSchema(ctx, pool); err != nil {
		return err
	}
	return menu.NewPostgresRepository(pool).Upsert(ctx, items)
}

func syncR2(ctx context.Context, cfg config.R2Config, items []menu.Item) (string, error) {
	r2, err := storage.NewR2Client(ctx, cfg)
	if err != nil {
		return "", err
	}

	doc, err := menu.EncodeDocument(items)
	if err != nil {
		return "", err
	}
	return r2.PutObject(ctx, cfg.CatalogKey, doc, "application/json")
}
