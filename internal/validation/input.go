package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jacksoncartel/legends-backend/internal/models"
)

// Константы валидации
const (
	MinLeadNameLength   = 3
	MaxLeadNameLength   = 100
	MinLeadHandleLength = 3
	MaxLeadHandleLength = 200
	MaxTitleLength      = 200
	MaxNotesLength      = 2000
)

// ValidationError описывает ошибку валидации конкретного поля.
// Такие ошибки показываются пользователю инициирующей поверхности
// и никогда не приводят к мутации данных.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создаёт ошибку валидации поля.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidatePortfolioInput проверяет кандидата на запись портфолио.
func ValidatePortfolioInput(title, url string, isVideo bool, videoURL string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "Asset Title is required.")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("Asset Title must be at most %d characters.", MaxTitleLength))
	}
	if strings.TrimSpace(url) == "" {
		return NewValidationError("url", "Thumbnail source is required.")
	}
	if isVideo && strings.TrimSpace(videoURL) == "" {
		return NewValidationError("videoUrl", "Cinematic Source URL is required for video items.")
	}
	return nil
}

// ValidatePortfolioStatus проверяет статус актива.
func ValidatePortfolioStatus(status string) error {
	if _, ok := models.ValidPortfolioStatuses[status]; !ok {
		return NewValidationError("status", fmt.Sprintf("Unknown asset status: %s.", status))
	}
	return nil
}

// ValidateLeadInput проверяет данные лида с формы захвата.
func ValidateLeadInput(fullName, handle string) error {
	if utf8.RuneCountInString(strings.TrimSpace(fullName)) < MinLeadNameLength {
		return NewValidationError("fullName", "Identity invalid: Name too short.")
	}
	if utf8.RuneCountInString(fullName) > MaxLeadNameLength {
		return NewValidationError("fullName", fmt.Sprintf("Name must be at most %d characters.", MaxLeadNameLength))
	}
	if utf8.RuneCountInString(strings.TrimSpace(handle)) < MinLeadHandleLength {
		return NewValidationError("handle", "Target invalid: Provide handle or site.")
	}
	if utf8.RuneCountInString(handle) > MaxLeadHandleLength {
		return NewValidationError("handle", fmt.Sprintf("Handle must be at most %d characters.", MaxLeadHandleLength))
	}
	return nil
}

// ValidateLeadStatus проверяет статус лида.
func ValidateLeadStatus(status string) error {
	if _, ok := models.ValidLeadStatuses[status]; !ok {
		return NewValidationError("status", fmt.Sprintf("Unknown lead status: %s.", status))
	}
	return nil
}
