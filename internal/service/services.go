// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/store"
)

// Services is the application layer handed to the front end.
type Services struct {
	CategoryService CategoryService
	NoteService     NoteService

	// Broker receives an event after every persisted change.
	Broker *Broker
}

func NewServices(storages *store.Storages, noteCrypto crypto.NoteCrypto, opts ...Option) *Services {
	broker := NewBroker()

	return &Services{
		CategoryService: NewCategoryService(storages.CategoryRepository, broker, opts...),
		NoteService:     NewNoteService(storages.NoteRepository, storages.CategoryRepository, noteCrypto, broker, opts...),
		Broker:          broker,
	}
}
