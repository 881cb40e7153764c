package domain

import (
	"fmt"

	apperrors "switchsprint/internal/platform/errors"
)

func errInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func errNotFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, kind, id)
}
