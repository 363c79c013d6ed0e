package share

import (
	"fmt"

	"github.com/jacksoncartel/legends-backend/internal/audit"
	"github.com/jacksoncartel/legends-backend/internal/logger"
)

// Clipboard описывает одноразовую возможность «скопировать текст»,
// предоставляемая внешней средой.
type Clipboard interface {
	WriteText(text string) error
}

// Copier копирует handle лида или ссылку расшаривания в буфер обмена
// в режиме fire-and-forget: ошибка буфера не показывается пользователю.
type Copier struct {
	clipboard Clipboard
	trail     *audit.Log
}

// NewCopier создаёт обёртку над буфером обмена.
func NewCopier(clipboard Clipboard, trail *audit.Log) *Copier {
	return &Copier{clipboard: clipboard, trail: trail}
}

// Copy отправляет текст в буфер и журналирует передачу.
func (c *Copier) Copy(text string) {
	if err := c.clipboard.WriteText(text); err != nil && logger.Log != nil {
		logger.Log.WithError(err).Debug("share: clipboard write failed")
	}
	c.trail.Record(fmt.Sprintf("Registry transmission: Copied %q", text), audit.SeverityInfo)
}
