package providers

import "errors"

var (
	// ErrUnknownProvider is returned if there is no provider with such
	// name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoData is returned if a source is parsed correctly but it has
	// no data at all. Usually it means that a format has changed.
	ErrNoData = errors.New("source has no data")
)
