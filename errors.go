package bigint

import "github.com/pkg/errors"

// Sentinel errors returned by parsing. Wrapped with github.com/pkg/errors
// at the point of failure so callers can both errors.Is against these
// and, during development, print a stack trace via %+v.
var (
	ErrEmptyInput        = errors.New("bigint: empty input")
	ErrInvalidCharacters = errors.New("bigint: invalid characters for radix")
	ErrInvalidRadix      = errors.New("bigint: unsupported radix")
	ErrUnknown           = errors.New("bigint: parse error")
)
