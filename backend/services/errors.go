package services

import (
	"errors"

	"questboard/backend/apperror"
	"questboard/backend/repository"
)

// mapRepoError turns repository sentinels into AppErrors. entity names the
// thing that was looked up, e.g. "user" or "task".
func mapRepoError(err error, entity string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NewNotFound(entity + " not found")
	case errors.Is(err, repository.ErrDuplicateEntry):
		return apperror.NewConflict(entity+" already exists", err)
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.NewInternal("internal server error", err)
}
