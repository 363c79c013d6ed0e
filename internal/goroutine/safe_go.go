package goroutine

import (
	"runtime/debug"

	"github.com/jacksoncartel/legends-backend/internal/logger"
)

// SafeGo запускает функцию в горутине с перехватом panic,
// чтобы фоновая задача (тикер деплоя, чтение стрима ассистента)
// не роняла процесс целиком.
func SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if logger.Log != nil {
					logger.Log.Errorf("goroutine: panic recovered: %v\n%s", r, debug.Stack())
				}
			}
		}()
		fn()
	}()
}
