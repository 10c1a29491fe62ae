package logger

import "sync"

// Levels accepted by Get.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	instance *Logger
	once     sync.Once
)

// Get returns the process-wide logger. The level only matters on the first
// call; later callers receive the instance that was already built.
func Get(level string) *Logger {
	once.Do(func() {
		instance = newZapLogger(level)
	})
	return instance
}
