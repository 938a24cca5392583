package offer

import "errors"

var ErrInvalidInput = errors.New("invalid offer input")
