package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// classifySQLiteError maps constraint and locking failures reported by
// go-sqlite3 to store sentinels. The returned error wraps both the sentinel
// and the driver error. Unrecognised errors are wrapped with fallback.
//
// fkTarget is the sentinel used for a FOREIGN KEY violation, which in this
// schema always means a referenced category is missing.
func classifySQLiteError(err, fallback, fkTarget error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", fkTarget, err)
	case sqlite3.ErrConstraintCheck:
		return fmt.Errorf("%w: %w", ErrInconsistentRecord, err)
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return fmt.Errorf("%w: %w", ErrDatabaseBusy, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
