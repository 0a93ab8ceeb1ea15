package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidTitle   = errors.New("invalid title")
	ErrSelfParent     = errors.New("category cannot be its own parent")
	ErrEmptyContent   = errors.New("note content is empty")
	ErrInvalidContent = errors.New("note content is not valid UTF-8")
)
