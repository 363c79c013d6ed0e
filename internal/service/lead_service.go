package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jacksoncartel/legends-backend/internal/audit"
	"github.com/jacksoncartel/legends-backend/internal/logger"
	"github.com/jacksoncartel/legends-backend/internal/models"
	"github.com/jacksoncartel/legends-backend/internal/repository"
	"github.com/jacksoncartel/legends-backend/internal/validation"
)

// ErrLeadNotFound возвращается, когда лид не найден.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository описывает взаимодействие сервиса с хранилищем лидов.
type LeadRepository interface {
	Load(ctx context.Context) ([]models.Lead, bool, error)
	Save(ctx context.Context, leads []models.Lead) error
}

// LeadInput описывает данные заявки с публичной формы захвата.
type LeadInput struct {
	FullName string
	Handle   string
	Goal     string
	Notes    string
}

// LeadService владеет коллекцией лидов. Публичная форма только
// добавляет записи, административная поверхность меняет статусы и
// удаляет. Мутации адресуются стабильным идентификатором записи,
// никогда позицией в отображаемом (возможно отфильтрованном) списке.
type LeadService struct {
	mu    sync.Mutex
	repo  LeadRepository
	trail *audit.Log
	leads []models.Lead
	now   func() time.Time
}

// NewLeadService создаёт сервис лидов.
func NewLeadService(repo LeadRepository, trail *audit.Log) *LeadService {
	return &LeadService{repo: repo, trail: trail, now: time.Now}
}

// Load ре-гидратирует коллекцию. Записям старого формата дозаполняются
// статус (new) и стабильный идентификатор; повреждённые данные молча
// заменяются пустой коллекцией.
func (s *LeadService) Load(ctx context.Context) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, found, err := s.repo.Load(ctx)
	switch {
	case err != nil && errors.Is(err, repository.ErrMalformedData):
		if logger.Log != nil {
			logger.Log.WithError(err).Warn("lead service: сохранённые данные повреждены, коллекция сброшена")
		}
		leads = []models.Lead{}
	case err != nil:
		return nil, fmt.Errorf("lead service: load %w", err)
	case !found:
		leads = []models.Lead{}
	}

	changed := false
	for i := range leads {
		if leads[i].Status == "" {
			leads[i].Status = models.LeadStatusNew
			changed = true
		}
		if leads[i].ID == uuid.Nil {
			leads[i].ID = uuid.New()
			changed = true
		}
	}

	if changed {
		if err := s.repo.Save(ctx, leads); err != nil {
			return nil, fmt.Errorf("lead service: persist after load %w", err)
		}
	}

	s.leads = leads
	s.trail.Record("Intelligence database synchronized", audit.SeverityInfo)
	return s.snapshot(), nil
}

// Leads возвращает текущий снимок коллекции, самые свежие записи первыми.
func (s *LeadService) Leads() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Append создаёт лид по данным формы захвата и добавляет его в начало
// коллекции. Дата фиксируется единожды и больше не меняется.
func (s *LeadService) Append(ctx context.Context, input LeadInput) (*models.Lead, error) {
	if err := validation.ValidateLeadInput(input.FullName, input.Handle); err != nil {
		return nil, err
	}

	goal := strings.TrimSpace(input.Goal)
	if goal == "" {
		goal = models.LeadGoalContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := models.Lead{
		ID:       uuid.New(),
		FullName: strings.TrimSpace(input.FullName),
		Handle:   strings.TrimSpace(input.Handle),
		Goal:     goal,
		Date:     s.now().UTC().Format(time.RFC3339),
		Status:   models.LeadStatusNew,
		Notes:    input.Notes,
	}

	next := append([]models.Lead{lead}, s.leads...)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("lead service: save %w", err)
	}
	s.leads = next

	s.trail.Record(fmt.Sprintf("New inbound lead: %s", lead.FullName), audit.SeverityInfo)
	return &lead, nil
}

// SetStatus переводит лид в новый статус.
func (s *LeadService) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := validation.ValidateLeadStatus(status); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrLeadNotFound
	}

	next := make([]models.Lead, len(s.leads))
	copy(next, s.leads)
	next[idx].Status = status

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("lead service: save %w", err)
	}
	s.leads = next

	s.trail.Record(fmt.Sprintf("Lead status updated: %s -> %s", next[idx].FullName, status), audit.SeverityInfo)
	return nil
}

// Remove удаляет лид. Удаление данных о потенциальных клиентах
// считается высокосерьёзным действием и журналируется как critical.
func (s *LeadService) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrLeadNotFound
	}
	name := s.leads[idx].FullName

	next := make([]models.Lead, 0, len(s.leads)-1)
	next = append(next, s.leads[:idx]...)
	next = append(next, s.leads[idx+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("lead service: save %w", err)
	}
	s.leads = next

	s.trail.Record(fmt.Sprintf("Lead purged from registry: %s", name), audit.SeverityCritical)
	return nil
}

// NewCount возвращает число необработанных лидов для индикатора
// административной поверхности.
func (s *LeadService) NewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.leads {
		if s.leads[i].Status == models.LeadStatusNew {
			count++
		}
	}
	return count
}

// indexOf возвращает позицию лида либо -1. Вызывать под мьютексом.
func (s *LeadService) indexOf(id uuid.UUID) int {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot возвращает копию коллекции. Вызывать под мьютексом.
func (s *LeadService) snapshot() []models.Lead {
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}
