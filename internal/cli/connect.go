package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/service"
	"github.com/MKhiriev/go-notebook/internal/store"
	"github.com/MKhiriev/go-notebook/internal/workers"
	"github.com/MKhiriev/go-notebook/models"
)

// Connect opens the SQLite notebook and builds the services and workers on
// top of it. noteCrypto may be nil for the default Argon2id parameters.
func Connect(noteCrypto crypto.NoteCrypto) Connector {
	return func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error) {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create storages: %w", err)
		}

		nc := noteCrypto
		if nc == nil {
			nc = crypto.NewNoteCrypto()
		}

		services := service.NewServices(storages, nc)
		services.Broker.Subscribe(logEvents(log))

		return &Runtime{
			Categories: services.CategoryService,
			Notes:      services.NoteService,
			Workers:    workers.NewWorkers(services.NoteService, cfg.Workers, log),
			Close:      storages.Close,
		}, nil
	}
}

// logEvents records every notebook change at debug level.
func logEvents(log *logger.Logger) service.Handler {
	return func(ev models.Event) {
		log.Debug().
			Str("func", "cli.logEvents").
			Str("event", string(ev.Kind)).
			Str("id", ev.ID).
			Msg("notebook changed")
	}
}
