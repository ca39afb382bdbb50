// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"qravy/internal/shared/logger"
)

// Go runs fn in a new goroutine. The returned channel receives fn's error,
// or an error describing the panic if fn panics, and is then closed. A nil
// error is not sent.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				errc <- fmt.Errorf("%s panicked: %v", name, r)
			}
		}()
		if err := fn(); err != nil {
			errc <- err
		}
	}()
	return errc
}
