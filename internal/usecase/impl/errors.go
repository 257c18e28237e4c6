// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "manna/internal/domain/errors"
	"manna/internal/domain/repository"
	"manna/internal/errors"
)

// storeError turns a repository failure into an AppError. When err matches
// sentinel the given notFound error is returned instead.
func storeError(err error, sentinel, notFound error, details string) error {
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		return domainerrors.ErrServiceUnavailable.WrapMessage(details)
	case sentinel != nil && notFound != nil && errors.Is(err, sentinel):
		return notFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isUserNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound)
}
