package domain

import "errors"

var (
	ErrProviderUnavailable = errors.New("media provider unavailable")
	ErrUnknownSelection    = errors.New("unknown orientation selection")
)
