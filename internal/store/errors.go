package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCategoryNotFound is returned when a category id does not exist,
	// including when a note or category references a missing parent.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrNoteNotFound is returned when a note id does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrInconsistentRecord is returned when a stored note body has some but
	// not all of its salt, nonce, tag and ciphertext columns, or fields of the
	// wrong size. Such a row is never turned into a partial record.
	ErrInconsistentRecord = errors.New("stored note body is inconsistent")

	// ErrAlreadyExists is returned when an insert collides with an existing id.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrDatabaseBusy is returned when SQLite reports the database as busy or
	// locked by another connection.
	ErrDatabaseBusy = errors.New("database is busy")
)

// Low-level database operation errors. These wrap the driver error when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrOpeningDB is returned when the database file cannot be created or
	// the connection cannot be established.
	ErrOpeningDB = errors.New("error opening database")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT (or RETURNING statement)
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
