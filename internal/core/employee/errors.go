package employee

import "errors"

var (
	ErrUnknownVariant = errors.New("employee: unknown variant")
	ErrMissingField   = errors.New("employee: missing field")
	ErrPersistence    = errors.New("employee: persistence failure")
	ErrNilEmployee    = errors.New("employee: employee is required")
)
