package order

import "errors"

var ErrInvalidInput = errors.New("invalid order input")
