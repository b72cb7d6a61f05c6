package amber

import (
	"errors"
)

var (
	// ErrNoSites is returned when the API token has no sites registered.
	ErrNoSites = errors.New("no sites found for this api token")

	// ErrNoGeneralChannel is returned when the current price response
	// contains no general channel entry.
	ErrNoGeneralChannel = errors.New("no general channel price found")

	// ErrUnexpectedStatus is returned on any non 2xx API response.
	ErrUnexpectedStatus = errors.New("unexpected amber api status")
)
