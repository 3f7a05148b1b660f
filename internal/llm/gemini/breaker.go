package gemini

import (
	"errors"
	"log/slog"

	"github.com/sony/gobreaker/v2"
)

type breaker = *gobreaker.CircuitBreaker[any]

func newBreaker(logger *slog.Logger) breaker {
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("llm.breaker.state_change",
				"name", name, "from", from.String(), "to", to.String())
		},
	})
}

func isCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
