package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jacksoncartel/legends-backend/internal/models"
	"github.com/jacksoncartel/legends-backend/internal/storage"
)

// ErrMalformedData возвращается, когда сохранённая коллекция не
// разбирается. Сервисный слой гасит эту ошибку и откатывается к
// набору по умолчанию, путь загрузки никогда не падает.
var ErrMalformedData = errors.New("stored data is malformed")

// Storage описывает KV-хранилище, в котором живут коллекции реестра.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PortfolioRepository сериализует коллекцию портфолио в KV-хранилище.
type PortfolioRepository struct {
	store Storage
}

// NewPortfolioRepository создаёт экземпляр репозитория.
func NewPortfolioRepository(store Storage) *PortfolioRepository {
	return &PortfolioRepository{store: store}
}

// Load читает коллекцию целиком. Отсутствие ключа возвращается как
// (nil, false, nil) и не является ошибкой.
func (r *PortfolioRepository) Load(ctx context.Context) ([]models.PortfolioItem, bool, error) {
	raw, found, err := r.store.Get(ctx, storage.KeyPortfolio)
	if err != nil {
		return nil, false, fmt.Errorf("portfolio repository: load %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var items []models.PortfolioItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, true, fmt.Errorf("portfolio repository: %w: %v", ErrMalformedData, err)
	}
	return items, true, nil
}

// Save атомарно заменяет сериализованную коллекцию целиком.
func (r *PortfolioRepository) Save(ctx context.Context, items []models.PortfolioItem) error {
	if items == nil {
		items = []models.PortfolioItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("portfolio repository: marshal %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyPortfolio, string(raw)); err != nil {
		return fmt.Errorf("portfolio repository: save %w", err)
	}
	return nil
}
