package application

import (
	"errors"
	"fmt"

	"github.com/storegate/backoffice/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

// mapError wraps request-shape violations. Stock and state errors
// (ErrNotEnoughStock, ErrAlreadyCanceled) pass through untranslated so
// callers can match them directly.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidCount) || errors.Is(err, domain.ErrNoLines) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
