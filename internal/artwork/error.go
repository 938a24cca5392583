package artwork

import "errors"

var (
	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrInvalidInput     = errors.New("invalid artwork input")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
