package service

import (
	"errors"

	"github.com/MKhiriev/go-notebook/internal/validators"
)

var (
	ErrEmptyContent     = validators.ErrEmptyContent
	ErrInvalidName      = validators.ErrInvalidName
	ErrPasswordRequired = errors.New("password is required")
	ErrCategoryCycle    = errors.New("category cannot be moved under itself or its descendants")
)
