// Package goroutine provides helpers for launching goroutines with
// panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic inside fn is logged with
// its stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
