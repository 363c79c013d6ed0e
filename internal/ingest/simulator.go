package ingest

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/h2non/filetype"

	"github.com/jacksoncartel/legends-backend/internal/audit"
)

// State описывает фазу конвейера приёма ассета.
type State int

const (
	StateIdle State = iota
	StateReading
	StateProgressing
	StateFinalizing
)

// MaxAssetBytes задаёт жёсткий лимит размера локального файла (2 MiB).
// Крупные ассеты подключаются внешней ссылкой.
const MaxAssetBytes = 2 * 1024 * 1024

// deployStep задаёт приращение синтетического счётчика деплоя за один тик.
const deployStep = 5

// readChunkBytes задаёт размер порции чтения файла для событий прогресса.
const readChunkBytes = 64 * 1024

var (
	// ErrAssetTooLarge возвращается для файлов крупнее лимита.
	ErrAssetTooLarge = errors.New("asset exceeds size limit")
	// ErrUnsupportedAsset возвращается, когда файл не является изображением.
	ErrUnsupportedAsset = errors.New("unsupported asset type")
	// ErrIngestionBusy возвращается при попытке запустить второй
	// прогон, пока первый не завершился (single-flight).
	ErrIngestionBusy = errors.New("ingestion already in flight")
)

// Clock абстрагирует время, чтобы тесты управляли тиками деплоя
// без реальных задержек.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Simulator моделирует приём ассета: чтение локального файла с
// лимитом размера и событиями прогресса либо синтетический «деплой»
// перед фактическим сохранением записи. Конвейер single-flight:
// одновременно выполняется не более одного прогона, отмены на
// середине нет, начатый прогон идёт до завершения или ошибки.
type Simulator struct {
	mu       sync.Mutex
	state    State
	progress int

	maxBytes int64
	interval time.Duration
	clock    Clock
	trail    *audit.Log
}

// NewSimulator создаёт конвейер приёма. Нулевой clock заменяется
// настоящими часами.
func NewSimulator(maxBytes int64, interval time.Duration, trail *audit.Log, clock Clock) *Simulator {
	if maxBytes <= 0 {
		maxBytes = MaxAssetBytes
	}
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	if clock == nil {
		clock = realClock{}
	}
	return &Simulator{
		maxBytes: maxBytes,
		interval: interval,
		clock:    clock,
		trail:    trail,
	}
}

// Status возвращает текущую фазу и прогресс (0..100).
func (s *Simulator) Status() (State, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.progress
}

// BeginFileRead читает локальный файл, проверяет лимит размера и тип
// содержимого, передаёт прогресс пропорционально прочитанным байтам и
// возвращает содержимое как data-URL для поля url кандидата.
// Превышение лимита отклоняется сразу, без перехода в фазу чтения.
func (s *Simulator) BeginFileRead(path string, onProgress func(percent int)) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("ingest: не удалось открыть файл: %w", err)
	}
	if info.Size() > s.maxBytes {
		s.trail.Record("Upload rejected: Oversized asset", audit.SeverityCritical)
		return "", ErrAssetTooLarge
	}

	if err := s.begin(StateReading); err != nil {
		return "", err
	}
	defer s.finish()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ingest: не удалось открыть файл: %w", err)
	}
	defer f.Close()

	s.trail.Record(fmt.Sprintf("Processing file: %s", filepath.Base(path)), audit.SeverityInfo)

	total := info.Size()
	content := make([]byte, 0, total)
	buf := make([]byte, readChunkBytes)
	var read int64
	for {
		n, err := f.Read(buf)
		if n > 0 {
			content = append(content, buf[:n]...)
			read += int64(n)
			s.setProgress(percentOf(read, total))
			if onProgress != nil {
				onProgress(percentOf(read, total))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("ingest: ошибка чтения файла: %w", err)
		}
	}

	// Проверяем магические байты: принимаются только изображения.
	kind, err := filetype.Match(content)
	if err != nil || kind == filetype.Unknown || !filetype.IsImage(content) {
		s.trail.Record("Upload rejected: Unsupported asset type", audit.SeverityCritical)
		return "", ErrUnsupportedAsset
	}

	s.setState(StateFinalizing)
	dataURL := fmt.Sprintf("data:%s;base64,%s", kind.MIME.Value, base64.StdEncoding.EncodeToString(content))

	s.trail.Record(
		fmt.Sprintf("Asset cached: %s (%.1f KB)", filepath.Base(path), float64(read)/1024),
		audit.SeverityInfo,
	)
	return dataURL, nil
}

// BeginDeploy прокручивает синтетический счётчик деплоя от 0 до 100
// с шагом 5 на каждый тик и затем вызывает complete, выполняющий
// фактическую мутацию реестра. Мутация не видна до завершения
// счётчика; прогон нельзя отменить на середине.
func (s *Simulator) BeginDeploy(onProgress func(percent int), complete func() error) error {
	if err := s.begin(StateProgressing); err != nil {
		return err
	}
	defer s.finish()

	progress := 0
	for progress < 100 {
		<-s.clock.After(s.interval)
		progress += deployStep
		if progress > 100 {
			progress = 100
		}
		s.setProgress(progress)
		if onProgress != nil {
			onProgress(progress)
		}
	}

	s.setState(StateFinalizing)
	if err := complete(); err != nil {
		return err
	}
	return nil
}

// begin переводит конвейер из Idle в рабочую фазу; занятый конвейер
// отклоняет второй прогон.
func (s *Simulator) begin(next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return ErrIngestionBusy
	}
	s.state = next
	s.progress = 0
	return nil
}

// finish возвращает конвейер в Idle без частичного состояния.
func (s *Simulator) finish() {
	s.mu.Lock()
	s.state = StateIdle
	s.progress = 0
	s.mu.Unlock()
}

func (s *Simulator) setState(next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

func (s *Simulator) setProgress(p int) {
	s.mu.Lock()
	s.progress = p
	s.mu.Unlock()
}

func percentOf(read, total int64) int {
	if total <= 0 {
		return 100
	}
	return int(read * 100 / total)
}
