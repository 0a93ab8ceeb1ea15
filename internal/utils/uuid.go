// Package utils holds small helpers shared by the services.
package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for categories and notes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, so ids sort roughly by creation time.
// It falls back to a random v4 when the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
