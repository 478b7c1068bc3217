package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ezyvoyage/pkg/metrics"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type BreakerSettings struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// ResilientCompleter guards a completer with a circuit breaker and optional
// bounded retries with exponential backoff. With zero retries every prompt
// gets exactly one attempt.
type ResilientCompleter struct {
	next       TextCompleter
	cb         *gobreaker.CircuitBreaker[string]
	maxRetries int
	backoff    time.Duration
	log        *zap.Logger
}

func NewResilientCompleter(next TextCompleter, s BreakerSettings, maxRetries int, backoff time.Duration, log *zap.Logger) *ResilientCompleter {
	if log == nil {
		log = zap.NewNop()
	}
	if s.Name == "" {
		s.Name = "ai-completion"
	}
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	metrics.BreakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// a missing key or a cancelled request says nothing about provider health
			return err == nil || errors.Is(err, ErrAINotConfigured) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ResilientCompleter{next: next, cb: cb, maxRetries: maxRetries, backoff: backoff, log: log}
}

func (r *ResilientCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			wait := r.backoff << (attempt - 1)
			r.log.Info("retrying completion", zap.Int("attempt", attempt), zap.Duration("backoff", wait), zap.Error(lastErr))
			if err := sleepCtx(ctx, wait); err != nil {
				return "", lastErr
			}
		}

		out, err := r.cb.Execute(func() (string, error) {
			return r.next.Complete(ctx, prompt)
		})
		if err == nil {
			return out, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
		}
		if errors.Is(err, ErrAINotConfigured) || ctx.Err() != nil {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func (r *ResilientCompleter) State() gobreaker.State {
	return r.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
