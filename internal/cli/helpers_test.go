package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/logger"
	"github.com/MKhiriev/go-notebook/internal/mock"
	"github.com/MKhiriev/go-notebook/internal/workers"
	"github.com/MKhiriev/go-notebook/models"
)

type fakePasswords struct {
	password    string
	newPassword string
	err         error
	asked       []string
}

func (f *fakePasswords) Password(string) (string, error) {
	f.asked = append(f.asked, "password")
	return f.password, f.err
}

func (f *fakePasswords) NewPassword() (string, error) {
	f.asked = append(f.asked, "new")
	return f.newPassword, f.err
}

type fakeEditor struct {
	content string
	saved   bool
	err     error
	// onEdit runs while the editor is "open".
	onEdit func()

	gotTitle   string
	gotInitial string
	calls      int
}

func (f *fakeEditor) Edit(_ context.Context, title, initial string) (string, bool, error) {
	f.calls++
	f.gotTitle, f.gotInitial = title, initial
	if f.onEdit != nil {
		f.onEdit()
	}
	return f.content, f.saved, f.err
}

type harness struct {
	t *testing.T

	categories *mock.MockCategoryService
	notes      *mock.MockNoteService
	passwords  *fakePasswords
	editor     *fakeEditor

	stdin     string
	clipboard []string
	connects  int
	cfg       *config.StructuredConfig
	connect   Connector
	workers   *workers.Workers

	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &harness{
		t:          t,
		categories: mock.NewMockCategoryService(ctrl),
		notes:      mock.NewMockNoteService(ctrl),
		passwords:  &fakePasswords{password: "correct-horse", newPassword: "correct-horse"},
		editor:     &fakeEditor{},
	}
}

func (h *harness) run(args ...string) int {
	h.t.Helper()
	h.out.Reset()
	h.errOut.Reset()

	connect := h.connect
	if connect == nil {
		connect = func(_ context.Context, cfg *config.StructuredConfig, _ *logger.Logger) (*Runtime, error) {
			h.connects++
			h.cfg = cfg
			return &Runtime{Categories: h.categories, Notes: h.notes, Workers: h.workers}, nil
		}
	}

	global := []string{
		"--db=" + filepath.Join(h.t.TempDir(), "notebook.db"),
		"--log-level=disabled",
	}

	return Execute(context.Background(), append(global, args...), Options{
		In:        strings.NewReader(h.stdin),
		Out:       &h.out,
		Err:       &h.errOut,
		Passwords: h.passwords,
		Editor:    h.editor,
		Clipboard: func(text string) error {
			h.clipboard = append(h.clipboard, text)
			return nil
		},
		Connect:   connect,
		BuildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
	})
}

// recordingPurger counts janitor sweeps and signals the first one.
type recordingPurger struct {
	mu    sync.Mutex
	calls int
	swept chan struct{}
}

func newRecordingPurger() *recordingPurger {
	return &recordingPurger{swept: make(chan struct{})}
}

func (p *recordingPurger) PurgePlaceholders(context.Context, time.Duration) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls == 1 {
		close(p.swept)
	}
	return nil, nil
}

func (p *recordingPurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
