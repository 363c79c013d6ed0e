package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jacksoncartel/legends-backend/internal/models"
	"github.com/jacksoncartel/legends-backend/internal/storage"
)

// LeadRepository сериализует коллекцию лидов в KV-хранилище.
// Коллекция персистится независимо от цикла сохранения портфолио.
type LeadRepository struct {
	store Storage
}

// NewLeadRepository создаёт экземпляр репозитория.
func NewLeadRepository(store Storage) *LeadRepository {
	return &LeadRepository{store: store}
}

// Load читает коллекцию лидов; отсутствие ключа не является ошибкой.
func (r *LeadRepository) Load(ctx context.Context) ([]models.Lead, bool, error) {
	raw, found, err := r.store.Get(ctx, storage.KeyLeads)
	if err != nil {
		return nil, false, fmt.Errorf("lead repository: load %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var leads []models.Lead
	if err := json.Unmarshal([]byte(raw), &leads); err != nil {
		return nil, true, fmt.Errorf("lead repository: %w: %v", ErrMalformedData, err)
	}
	return leads, true, nil
}

// Save атомарно заменяет сериализованную коллекцию целиком.
func (r *LeadRepository) Save(ctx context.Context, leads []models.Lead) error {
	if leads == nil {
		leads = []models.Lead{}
	}
	raw, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("lead repository: marshal %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyLeads, string(raw)); err != nil {
		return fmt.Errorf("lead repository: save %w", err)
	}
	return nil
}
