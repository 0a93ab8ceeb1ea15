// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing side of the notebook's error handling.
//
// All Msg* constants are the human-readable strings printed by the command
// line front end. UserMessage maps any error returned by the services onto
// one of them so that raw driver or cipher errors never reach the user.
package app

const (
	// MsgWrongPasswordOrDamaged is shown when a note fails authentication.
	// A wrong password and a tampered record fail the same tag check, so the
	// message never claims which one happened.
	MsgWrongPasswordOrDamaged = "wrong password or the note is damaged"

	// MsgNoteIsEmpty is shown when opening a note that was never saved.
	MsgNoteIsEmpty = "this note has no content yet"

	// MsgCorruptedNote is shown when a stored record is malformed before
	// any decryption is attempted.
	MsgCorruptedNote = "the stored note is corrupted"

	// MsgNotUTF8 is shown when a note decrypts to bytes that are not text.
	MsgNotUTF8 = "the note could not be decoded as text"

	// MsgEncryptionUnavailable is shown when key derivation or the system
	// random source fails. Nothing was written.
	MsgEncryptionUnavailable = "encryption failed, nothing was saved; please try again"

	MsgEmptyContent     = "a note cannot be empty"
	MsgInvalidContent   = "note content must be valid UTF-8 text"
	MsgPasswordRequired = "a password is required"
	MsgInvalidName      = "a name must be 1 to 255 characters and not blank"
	MsgInvalidTitle     = "a title must be 1 to 255 characters and not blank"
	MsgInvalidID        = "an id is required"
	MsgCategoryCycle    = "a category cannot be moved under itself or one of its subcategories"

	MsgCategoryNotFound = "category not found"
	MsgNoteNotFound     = "note not found"
	MsgAlreadyExists    = "an item with this id already exists"
	MsgDatabaseBusy     = "the notebook is in use by another process, try again"

	// MsgInvalidConfig is shown when configuration validation fails.
	MsgInvalidConfig = "invalid configuration"

	// MsgCancelled is shown when the operation was interrupted.
	MsgCancelled = "operation cancelled"

	// MsgInternalError is the fallback for anything unexpected; details go
	// to the log only.
	MsgInternalError = "internal error, see the log for details"
)
