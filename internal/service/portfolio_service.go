package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jacksoncartel/legends-backend/internal/audit"
	"github.com/jacksoncartel/legends-backend/internal/logger"
	"github.com/jacksoncartel/legends-backend/internal/models"
	"github.com/jacksoncartel/legends-backend/internal/repository"
	"github.com/jacksoncartel/legends-backend/internal/validation"
)

// ErrItemNotFound возвращается, когда актив портфолио не найден.
var ErrItemNotFound = errors.New("portfolio item not found")

// PortfolioRepository описывает взаимодействие сервиса с хранилищем портфолио.
type PortfolioRepository interface {
	Load(ctx context.Context) ([]models.PortfolioItem, bool, error)
	Save(ctx context.Context, items []models.PortfolioItem) error
}

// PortfolioInput описывает кандидата на запись портфолио.
type PortfolioInput struct {
	Title    string
	URL      string
	IsVideo  bool
	VideoURL string
	Status   string
}

// PortfolioService владеет коллекцией портфолио: ре-гидратация с
// миграционным проходом, валидируемый CRUD и синхронная персистенция
// после каждой мутации. Наружу отдаются только копии коллекции,
// чтобы прерванное редактирование не могло испортить состояние.
type PortfolioService struct {
	mu    sync.Mutex
	repo  PortfolioRepository
	trail *audit.Log
	items []models.PortfolioItem
	now   func() time.Time
}

// NewPortfolioService создаёт сервис портфолио.
func NewPortfolioService(repo PortfolioRepository, trail *audit.Log) *PortfolioService {
	return &PortfolioService{repo: repo, trail: trail, now: time.Now}
}

// Load ре-гидратирует коллекцию из хранилища и применяет миграционный
// проход. Отсутствующие или повреждённые данные молча заменяются
// встроенным набором: путь загрузки никогда не падает из-за парсинга.
func (s *PortfolioService) Load(ctx context.Context) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, found, err := s.repo.Load(ctx)
	switch {
	case err != nil && errors.Is(err, repository.ErrMalformedData):
		if logger.Log != nil {
			logger.Log.WithError(err).Warn("portfolio service: сохранённые данные повреждены, откат к набору по умолчанию")
		}
		items = defaultPortfolioItems()
	case err != nil:
		return nil, fmt.Errorf("portfolio service: load %w", err)
	case !found:
		items = defaultPortfolioItems()
	default:
		items, _ = migratePortfolioItems(items)
	}

	// Зеркалим результат загрузки в хранилище: после миграции или
	// заполнения по умолчанию durable-состояние совпадает с памятью.
	if err := s.repo.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("portfolio service: persist after load %w", err)
	}

	s.items = items
	return s.snapshot(), nil
}

// Items возвращает текущий снимок коллекции для читающих поверхностей.
func (s *PortfolioService) Items() []models.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Create валидирует кандидата и добавляет актив в начало коллекции.
// Идентификатор производится от текущего времени и строго растёт,
// повторное использование исключено.
func (s *PortfolioService) Create(ctx context.Context, input PortfolioInput) (*models.PortfolioItem, error) {
	if err := validation.ValidatePortfolioInput(input.Title, input.URL, input.IsVideo, input.VideoURL); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = models.PortfolioStatusActive
	}
	if err := validation.ValidatePortfolioStatus(status); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	for _, existing := range s.items {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}

	item := models.PortfolioItem{
		ID:      id,
		Title:   strings.TrimSpace(input.Title),
		URL:     strings.TrimSpace(input.URL),
		IsVideo: input.IsVideo,
		Type:    models.MediaTypeFor(input.IsVideo),
		Status:  status,
	}
	if input.IsVideo {
		item.VideoURL = strings.TrimSpace(input.VideoURL)
	}

	next := append([]models.PortfolioItem{item}, s.items...)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("portfolio service: save %w", err)
	}
	s.items = next

	s.trail.Record(fmt.Sprintf("New asset deployed: %s", item.Title), audit.SeverityInfo)
	return &item, nil
}

// Update перевалидирует слитую запись и заменяет её на месте,
// позиция и идентификатор сохраняются.
func (s *PortfolioService) Update(ctx context.Context, id int64, input PortfolioInput) (*models.PortfolioItem, error) {
	if err := validation.ValidatePortfolioInput(input.Title, input.URL, input.IsVideo, input.VideoURL); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	status := input.Status
	if status == "" {
		status = s.items[idx].Status
		if status == "" {
			status = models.PortfolioStatusActive
		}
	}
	if err := validation.ValidatePortfolioStatus(status); err != nil {
		return nil, err
	}

	item := models.PortfolioItem{
		ID:      id,
		SeedKey: s.items[idx].SeedKey,
		Title:   strings.TrimSpace(input.Title),
		URL:     strings.TrimSpace(input.URL),
		IsVideo: input.IsVideo,
		Type:    models.MediaTypeFor(input.IsVideo),
		Status:  status,
	}
	if input.IsVideo {
		item.VideoURL = strings.TrimSpace(input.VideoURL)
	}

	next := make([]models.PortfolioItem, len(s.items))
	copy(next, s.items)
	next[idx] = item

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("portfolio service: save %w", err)
	}
	s.items = next

	s.trail.Record(fmt.Sprintf("Asset re-configured: %s", item.Title), audit.SeverityInfo)
	return &item, nil
}

// Delete удаляет актив. Удаление идемпотентно: отсутствие
// идентификатора не считается ошибкой.
func (s *PortfolioService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	title := s.items[idx].Title

	next := make([]models.PortfolioItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("portfolio service: save %w", err)
	}
	s.items = next

	s.trail.Record(fmt.Sprintf("Asset removed: %s", title), audit.SeverityWarning)
	return nil
}

// indexOf возвращает позицию актива либо -1. Вызывать под мьютексом.
func (s *PortfolioService) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot возвращает копию коллекции. Вызывать под мьютексом.
func (s *PortfolioService) snapshot() []models.PortfolioItem {
	out := make([]models.PortfolioItem, len(s.items))
	copy(out, s.items)
	return out
}
