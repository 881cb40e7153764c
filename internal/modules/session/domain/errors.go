package domain

import (
	"fmt"

	apperrors "switchsprint/internal/platform/errors"
)

func errInvalid(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, msg)
}
