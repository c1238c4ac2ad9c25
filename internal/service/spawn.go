package service

import (
	"fmt"

	"github.com/rs/zerolog"
)

// spawn runs fn on its own goroutine. Its outcome is only logged: an error
// or panic is reported at warn level under task and never reaches the caller.
func spawn(log zerolog.Logger, task string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn().Str("task", task).Str("panic", fmt.Sprint(r)).Msg("detached task panicked")
			}
		}()
		if err := fn(); err != nil {
			log.Warn().Err(err).Str("task", task).Msg("detached task failed")
		}
	}()
}
