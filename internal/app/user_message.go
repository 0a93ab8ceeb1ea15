package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notebook/internal/config"
	"github.com/MKhiriev/go-notebook/internal/crypto"
	"github.com/MKhiriev/go-notebook/internal/service"
	"github.com/MKhiriev/go-notebook/internal/store"
	"github.com/MKhiriev/go-notebook/internal/validators"
)

// sentinelMessages is checked in order; the first sentinel err wraps wins.
var sentinelMessages = []struct {
	err error
	msg string
}{
	{service.ErrPasswordRequired, MsgPasswordRequired},
	{service.ErrCategoryCycle, MsgCategoryCycle},
	{validators.ErrSelfParent, MsgCategoryCycle},
	{validators.ErrEmptyContent, MsgEmptyContent},
	{validators.ErrInvalidContent, MsgInvalidContent},
	{validators.ErrInvalidName, MsgInvalidName},
	{validators.ErrInvalidTitle, MsgInvalidTitle},
	{validators.ErrInvalidID, MsgInvalidID},
	{store.ErrCategoryNotFound, MsgCategoryNotFound},
	{store.ErrNoteNotFound, MsgNoteNotFound},
	{store.ErrInconsistentRecord, MsgCorruptedNote},
	{store.ErrAlreadyExists, MsgAlreadyExists},
	{store.ErrDatabaseBusy, MsgDatabaseBusy},
	{config.ErrInvalidStorageConfigs, MsgInvalidConfig},
	{config.ErrInvalidLogConfigs, MsgInvalidConfig},
	{config.ErrInvalidWorkerConfigs, MsgInvalidConfig},
	{context.Canceled, MsgCancelled},
	{context.DeadlineExceeded, MsgCancelled},
}

// UserMessage returns the message to show for err, or "" for nil.
// Crypto errors are classified by kind first.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch crypto.KindOf(err) {
	case crypto.KindAuthenticationFailed:
		return MsgWrongPasswordOrDamaged
	case crypto.KindEmptyRecord:
		return MsgNoteIsEmpty
	case crypto.KindInvalidInputLength:
		return MsgCorruptedNote
	case crypto.KindDecodingFailed:
		return MsgNotUTF8
	case crypto.KindKeyDerivationFailed, crypto.KindNonceGenerationFailed:
		return MsgEncryptionUnavailable
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	return MsgInternalError
}
