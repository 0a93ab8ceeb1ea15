// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// A Validator inspects a model value and may be limited to a subset of its
// fields by name (see the Field* constants). Validation failures are returned
// as the sentinel errors in errors.go so callers can match them with errors.Is.
package validators

import "context"

// Validator validates an input value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
