package service

import (
	"time"

	"github.com/MKhiriev/go-notebook/internal/utils"
	"github.com/MKhiriev/go-notebook/internal/validators"
)

type options struct {
	ids       IDGenerator
	now       func() time.Time
	validator validators.Validator
}

// Option customizes the services built by NewServices and the individual
// constructors.
type Option func(*options)

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithValidator(v validators.Validator) Option {
	return func(o *options) { o.validator = v }
}

func buildOptions(opts []Option) options {
	o := options{
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		validator: validators.NewNotebookValidator(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// timestamp is the current time in UTC, the zone everything is stored in.
func (o options) timestamp() time.Time {
	return o.now().UTC()
}
