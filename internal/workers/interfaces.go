// Package workers runs background jobs alongside a front-end command.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start returns immediately; the job runs until ctx is cancelled or Stop is
// called. Stop blocks until the job has exited and is a no-op on a worker that
// is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// PlaceholderPurger deletes never-sealed notes older than a given age.
type PlaceholderPurger interface {
	PurgePlaceholders(ctx context.Context, olderThan time.Duration) ([]string, error)
}
