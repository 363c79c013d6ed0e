package models

import (
	"github.com/google/uuid"
)

// Lead описывает входящую заявку с публичной формы захвата.
// Поле Date фиксируется в момент создания и больше не меняется.
type Lead struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Handle   string    `json:"handle"`
	Goal     string    `json:"goal"`
	Date     string    `json:"date"`
	Status   string    `json:"status,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}
