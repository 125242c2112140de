package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/config"
	"github.com/vbonduro/cashdrop/internal/db"
	"github.com/vbonduro/cashdrop/internal/labelreader"
	"github.com/vbonduro/cashdrop/internal/labelreader/claude"
	"github.com/vbonduro/cashdrop/internal/labelstore/local"
	"github.com/vbonduro/cashdrop/internal/logging"
	"github.com/vbonduro/cashdrop/internal/service"
	"github.com/vbonduro/cashdrop/internal/store"
	"github.com/vbonduro/cashdrop/internal/web"
)

func main() {
	// A missing .env is fine; the environment alone may configure everything.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	clock, err := bizclock.New(cfg.BusinessTZ)
	if err != nil {
		logger.Error("failed to load business timezone", "tz", cfg.BusinessTZ, "error", err)
		return
	}

	database, err := db.Open(cfg.DBDriver, cfg.DataSource())
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	labels, err := local.New(cfg.MediaPath)
	if err != nil {
		logger.Error("failed to initialize label store", "error", err)
		return
	}

	drawerStore := store.NewDrawerStore(database)
	dropStore := store.NewDropStore(database)
	reconcilerStore := store.NewReconcilerStore(database)
	batchStore := store.NewBatchStore(database)

	services := web.Services{
		Drawers:   service.NewDrawerService(drawerStore, clock, logger),
		Drops:     service.NewDropService(dropStore, drawerStore, labels, newLabelReader(cfg, logger), clock, logger),
		Reconcile: service.NewReconcileService(reconcilerStore, dropStore, logger),
		BankDrops: service.NewBankDropService(dropStore, reconcilerStore, batchStore, clock, logger),
	}
	server := web.NewServer(services, labels, web.Options{
		AuthSecret:     cfg.AuthSecret,
		MaxUploadBytes: cfg.MaxUploadMB << 20,
	}, logger)

	logger.Info("business clock ready", "tz", cfg.BusinessTZ, "today", clock.Today())
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newLabelReader returns nil when label totals are entered by hand only.
func newLabelReader(cfg *config.Config, logger *slog.Logger) labelreader.Reader {
	switch cfg.LabelReader {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when LABEL_READER=claude; label reading disabled")
			return nil
		}
		logger.Info("using Claude label reader", "model", cfg.ClaudeModel)
		return claude.New(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		logger.Info("label reader disabled")
		return nil
	}
}
