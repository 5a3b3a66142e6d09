package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/config"
	"github.com/matiascayunao/pvsa-p/internal/database"
	httpapi "github.com/matiascayunao/pvsa-p/internal/http"
	"github.com/matiascayunao/pvsa-p/internal/logger"
	"github.com/matiascayunao/pvsa-p/internal/repository"
	"github.com/matiascayunao/pvsa-p/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "pvsa-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var (
		db        *sql.DB
		hierarchy repository.HierarchyRepo
		catalog   repository.CatalogRepo
		inventory repository.InventoryRepo
		summary   repository.SummaryRepo
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for pvsa-data")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory store", zap.Error(err))
		}
	}
	if db != nil {
		hierarchy = repository.NewPostgresHierarchyRepo(db)
		catalog = repository.NewPostgresCatalogRepo(db)
		inventory = repository.NewPostgresInventoryRepo(db)
		summary = repository.NewPostgresSummaryRepo(db)
	} else {
		// DB not ready: one shared memory store backs all four repos so
		// cross-entity rules still hold
		mem := repository.NewMemoryStore()
		hierarchy, catalog, inventory, summary = mem, mem, mem, mem
	}

	hierarchySvc := service.NewHierarchyService(hierarchy, log)
	catalogSvc := service.NewCatalogService(catalog, log)
	inventorySvc := service.NewInventoryService(inventory, log)
	typicalSvc := service.NewTypicalService(catalog, hierarchy, log)
	structureSvc := service.NewStructureService(inventory, log)
	summarySvc := service.NewSummaryService(summary, log)

	router := httpapi.NewRouter(log)
	router.Register(
		httpapi.NewHierarchyHandler(hierarchySvc, log),
		httpapi.NewCatalogHandler(catalogSvc, log),
		httpapi.NewPlacedItemHandler(inventorySvc, log),
		httpapi.NewTypicalHandler(typicalSvc, log),
		httpapi.NewStructureHandler(structureSvc, log),
		httpapi.NewSummaryHandler(summarySvc, log),
		httpapi.NewLookupHandler(hierarchySvc, catalogSvc, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			log.Error("server exited", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if db != nil {
		database.Close(db)
	}
}
