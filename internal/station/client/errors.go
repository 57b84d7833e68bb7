package client

import "errors"

var (
	ErrUnavailable  = errors.New("tallier unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)
