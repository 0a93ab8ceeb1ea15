// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
)

type placeholderJanitor struct {
	purger   PlaceholderPurger
	interval time.Duration
	ttl      time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPlaceholderJanitor creates a Worker that sweeps placeholder notes older
// than cfg.PlaceholderTTL once on Start and then every cfg.JanitorInterval.
// Non-positive settings fall back to the config defaults.
func NewPlaceholderJanitor(purger PlaceholderPurger, cfg config.Workers, logger *logger.Logger) Worker {
	interval := cfg.JanitorInterval
	if interval <= 0 {
		interval = config.DefaultJanitorInterval
	}
	ttl := cfg.PlaceholderTTL
	if ttl <= 0 {
		ttl = config.DefaultPlaceholderTTL
	}

	return &placeholderJanitor{
		purger:   purger,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start implements Worker. A running janitor is stopped first.
func (j *placeholderJanitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.sweep(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

func (j *placeholderJanitor) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	ids, err := j.purger.PurgePlaceholders(ctx, j.ttl)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).
				Str("func", "placeholderJanitor.sweep").
				Msg("placeholder sweep failed")
		}
		return
	}

	j.logger.Debug().
		Str("func", "placeholderJanitor.sweep").
		Int("purged", len(ids)).
		Msg("placeholder sweep done")
}

// Stop implements Worker.
func (j *placeholderJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
