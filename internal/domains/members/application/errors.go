package application

import (
	"errors"
	"fmt"

	"github.com/storegate/backoffice/internal/domains/members/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid member input")
	// ErrDuplicateName rejects registration when the name is already taken.
	ErrDuplicateName = errors.New("member name already registered")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
