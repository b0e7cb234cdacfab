package errors

import "errors"

// Sentinel errors shared by all storage backends. Handlers map them to
// HTTP statuses (404, 409, 500); backends wrap them with context via
// fmt.Errorf("...: %w", ...).
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrStorageInternal = errors.New("storage internal error")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
