package hudf

import "errors"

// Error kinds returned by all operations. Use errors.Is to classify.
var (
	// ErrColumnNotFound means a referenced column is absent from the frame.
	ErrColumnNotFound = errors.New("hudf: column not found")

	// ErrInvalidArgument means an unrecognized unit, statistic, error mode,
	// timezone, or malformed window specification.
	ErrInvalidArgument = errors.New("hudf: invalid argument")

	// ErrTypeMismatch means a value or column is not convertible to the type
	// an operation requires.
	ErrTypeMismatch = errors.New("hudf: type mismatch")

	// ErrDuplicateColumn means a generated or supplied column name collides
	// with an existing column or with another generated name.
	ErrDuplicateColumn = errors.New("hudf: duplicate column name")

	// ErrEmptyInput means the operation was given a zero-row frame.
	ErrEmptyInput = errors.New("hudf: empty frame")
)
