package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/mock"
	"github.com/MKhiriev/go-notebook/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func ptr(s string) *string { return &s }

func fixedClock() time.Time { return fixedNow }

// sequentialIDs returns "<prefix>-1", "<prefix>-2", ...
type sequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *sequentialIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// eventRecorder collects published events.
type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) handle(ev models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, string(ev.Kind)+":"+ev.ID)
}

func (r *eventRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func testRecord(fill byte) crypto.EncryptedRecord {
	return crypto.EncryptedRecord{
		Salt:       bytes.Repeat([]byte{fill}, crypto.SaltSize),
		Nonce:      bytes.Repeat([]byte{fill + 1}, crypto.NonceSize),
		Ciphertext: []byte("ciphertext"),
		Tag:        bytes.Repeat([]byte{fill + 2}, crypto.TagSize),
	}
}

func sealedBody(t *testing.T, fill byte) crypto.SealedBody {
	t.Helper()
	body, err := crypto.SealedWith(testRecord(fill))
	require.NoError(t, err)
	return body
}

func newTestCategorySvc(t *testing.T, ctrl *gomock.Controller) (CategoryService, *mock.MockCategoryRepository, *eventRecorder) {
	t.Helper()
	repo := mock.NewMockCategoryRepository(ctrl)
	broker := NewBroker()
	rec := &eventRecorder{}
	broker.Subscribe(rec.handle)

	svc := NewCategoryService(repo, broker,
		WithIDGenerator(&sequentialIDs{prefix: "cat"}),
		WithClock(fixedClock),
	)
	return svc, repo, rec
}

func newTestNoteSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	NoteService,
	*mock.MockNoteRepository,
	*mock.MockCategoryRepository,
	*mock.MockNoteCrypto,
	*eventRecorder,
) {
	t.Helper()
	notes := mock.NewMockNoteRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)
	noteCrypto := mock.NewMockNoteCrypto(ctrl)
	broker := NewBroker()
	rec := &eventRecorder{}
	broker.Subscribe(rec.handle)

	svc := NewNoteService(notes, categories, noteCrypto, broker,
		WithIDGenerator(&sequentialIDs{prefix: "note"}),
		WithClock(fixedClock),
	)
	return svc, notes, categories, noteCrypto, rec
}
