package service

import (
	"strings"

	"github.com/jacksoncartel/legends-backend/internal/models"
)

// Машинные ключи сид-записей. Миграция ключуется по ним, а не по
// отображаемому названию: название редактируется пользователем.
const (
	seedKeyGlassHouse = "seed-industrial-glass-house"
	seedKeySkyline    = "seed-midnight-skyline"
	seedKeyEmber      = "seed-ember-lifestyle"
)

// Канонические обложки сид-записей. Ранние версии поставлялись с
// битыми или устаревшими ссылками, миграция лечит их без участия
// пользователя.
const (
	canonicalURLGlassHouse = "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=1200"
	canonicalURLSkyline    = "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?auto=format&fit=crop&q=80&w=1200"
	canonicalURLEmber      = "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?auto=format&fit=crop&q=80&w=1200"
)

// defaultPortfolioItems возвращает встроенный набор портфолио,
// которым заполняется пустое или повреждённое хранилище.
func defaultPortfolioItems() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			ID:       1,
			SeedKey:  seedKeyGlassHouse,
			Title:    "The Industrial Glass House",
			URL:      canonicalURLGlassHouse,
			IsVideo:  true,
			VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Type:     models.MediaTypeVideo,
			Status:   models.PortfolioStatusActive,
		},
		{
			ID:      2,
			SeedKey: seedKeySkyline,
			Title:   "Campaign: Midnight Skyline",
			URL:     canonicalURLSkyline,
			IsVideo: false,
			Type:    models.MediaTypeImage,
			Status:  models.PortfolioStatusActive,
		},
		{
			ID:       3,
			SeedKey:  seedKeyEmber,
			Title:    "Ember Lifestyle Feature",
			URL:      canonicalURLEmber,
			IsVideo:  true,
			VideoURL: "https://vimeo.com/148750015",
			Type:     models.MediaTypeVideo,
			Status:   models.PortfolioStatusActive,
		},
	}
}

// seedMigration описывает одно правило самовосстановления сид-записи.
type seedMigration struct {
	key          string
	legacyTitle  string
	canonicalURL string
	stale        func(url string) bool
}

var seedMigrations = []seedMigration{
	{
		key:          seedKeyGlassHouse,
		legacyTitle:  "The Industrial Glass House",
		canonicalURL: canonicalURLGlassHouse,
		stale: func(u string) bool {
			return !strings.Contains(u, "unsplash")
		},
	},
	{
		key:          seedKeySkyline,
		legacyTitle:  "Campaign: Midnight Skyline",
		canonicalURL: canonicalURLSkyline,
		stale: func(u string) bool {
			return strings.Contains(u, "1600566753190") || !strings.Contains(u, "unsplash")
		},
	},
	{
		key:          seedKeyEmber,
		legacyTitle:  "Ember Lifestyle Feature",
		canonicalURL: canonicalURLEmber,
		stale: func(u string) bool {
			return strings.Contains(u, "1600607687940") || !strings.Contains(u, "unsplash")
		},
	},
}

// migratePortfolioItems выполняет миграционный проход по коллекции.
// Записи, сохранённые до появления машинных ключей, дополнительно
// получают ключ по точному совпадению названия. Проход идемпотентен:
// повторное применение к уже мигрированным данным ничего не меняет.
func migratePortfolioItems(items []models.PortfolioItem) ([]models.PortfolioItem, bool) {
	changed := false
	out := make([]models.PortfolioItem, len(items))
	copy(out, items)

	for i := range out {
		for _, m := range seedMigrations {
			matched := out[i].SeedKey == m.key ||
				(out[i].SeedKey == "" && out[i].Title == m.legacyTitle)
			if !matched {
				continue
			}
			if out[i].SeedKey == "" {
				out[i].SeedKey = m.key
				changed = true
			}
			if m.stale(out[i].URL) {
				out[i].URL = m.canonicalURL
				changed = true
			}
			break
		}
	}

	return out, changed
}
