package audit

import (
	"sync"
	"time"

	"github.com/jacksoncartel/legends-backend/internal/logger"
)

// Уровни серьёзности записей журнала
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// maxEntries ограничивает журнал десятью последними действиями.
const maxEntries = 10

// Entry описывает одно действие в журнале.
type Entry struct {
	Time     string `json:"time"`
	Action   string `json:"action"`
	Severity string `json:"severity"`
}

// Log хранит ограниченный журнал последних действий обоих реестров.
// Это вспомогательный дисплейный журнал: между перезапусками он не
// сохраняется, каждая запись дублируется в структурированный логгер.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// NewLog создаёт пустой журнал.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record добавляет запись в начало журнала и обрезает его
// до maxEntries последних записей.
func (l *Log) Record(action, severity string) {
	switch severity {
	case SeverityInfo, SeverityWarning, SeverityCritical:
	default:
		severity = SeverityInfo
	}

	l.mu.Lock()
	entry := Entry{
		Time:     l.now().Format("15:04:05"),
		Action:   action,
		Severity: severity,
	}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
	l.mu.Unlock()

	if logger.Log == nil {
		return
	}
	switch severity {
	case SeverityCritical:
		logger.Log.Error(action)
	case SeverityWarning:
		logger.Log.Warn(action)
	default:
		logger.Log.Info(action)
	}
}

// Entries возвращает копию журнала, самые свежие записи первыми.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
