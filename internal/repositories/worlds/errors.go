package worlds

import (
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

var (
	errInputRequired   = errors.InvalidArgument("input is required")
	errIDRequired      = errors.InvalidArgument("world ID is required")
	errContentRequired = errors.InvalidArgument("world content is required")
)

func errNotFound(id string) error {
	return errors.NotFoundf("world %s not found", id)
}
