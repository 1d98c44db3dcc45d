package usecase

import (
	"errors"

	"vidtube/domain/apperror"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// notFoundOr maps repository.ErrNotFound to a 404 with message and anything
// else to an internal error.
func notFoundOr(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return apperror.Internal(err)
}

func parseID(hex, field string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, apperror.Validation([]apperror.FieldError{{Field: field, Message: "must be a valid id"}})
	}
	return id, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
