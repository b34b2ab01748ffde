package cache

import (
	"errors"
	"fmt"

	"lru-cache-api/internal/optional"
)

// ErrInvalidArgument is returned when a capacity, key or value is unusable.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, name)
}

// checkValue rejects nil keys and values of nilable types.
func checkValue(v any, name string) error {
	if optional.IsNil(v) {
		return invalidArgument(name)
	}
	return nil
}
