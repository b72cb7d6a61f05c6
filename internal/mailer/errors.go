package mailer

import (
	"errors"
)

var (
	// ErrUnexpectedStatus is returned on any non 2xx API response.
	ErrUnexpectedStatus = errors.New("unexpected loops api status")
)
