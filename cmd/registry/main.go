package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/jacksoncartel/legends-backend/internal/audit"
	"github.com/jacksoncartel/legends-backend/internal/config"
	"github.com/jacksoncartel/legends-backend/internal/logger"
	"github.com/jacksoncartel/legends-backend/internal/repository"
	"github.com/jacksoncartel/legends-backend/internal/service"
	"github.com/jacksoncartel/legends-backend/internal/storage"
	"github.com/jacksoncartel/legends-backend/internal/views"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Env)

	// Локальное KV-хранилище реестра.
	store, err := storage.Open(ctx, cfg.DataPath)
	if err != nil {
		log.Fatalf("main: ошибка открытия хранилища: %v", err)
	}
	defer safeClose(store)

	trail := audit.NewLog()

	// Репозитории.
	portfolioRepo := repository.NewPortfolioRepository(store)
	leadRepo := repository.NewLeadRepository(store)

	// Сервисы.
	portfolioService := service.NewPortfolioService(portfolioRepo, trail)
	leadService := service.NewLeadService(leadRepo, trail)

	// Ре-гидратация: портфолио проходит миграционный проход,
	// лидам дозаполняются статусы и идентификаторы.
	items, err := portfolioService.Load(ctx)
	if err != nil {
		log.Fatalf("main: ошибка загрузки портфолио: %v", err)
	}
	leads, err := leadService.Load(ctx)
	if err != nil {
		log.Fatalf("main: ошибка загрузки лидов: %v", err)
	}

	trail.Record("Control Core initialized", audit.SeverityInfo)

	usage := views.EstimateStorageUsage(items, leads)
	logger.Log.WithFields(logrus.Fields{
		"assets":     len(items),
		"leads":      len(leads),
		"leads_new":  leadService.NewCount(),
		"storage_mb": usage,
	}).Info("main: реестр загружен")

	if views.NearingCapacity(usage) {
		logger.Log.Warn("main: локальное хранилище приближается к лимиту")
	}
}

// safeClose закрывает файл хранилища.
func safeClose(store *storage.KVStore) {
	if err := store.Close(); err != nil {
		log.Printf("main: ошибка закрытия хранилища: %v", err)
	}
}
