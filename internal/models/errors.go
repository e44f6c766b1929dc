package models

import "errors"

// Error taxonomy shared by the store, the profilers and the front ends.
var (
	ErrNotFound        = errors.New("profile not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTransport       = errors.New("transport failure")
	ErrUnsupportedFile = errors.New("unsupported file type")
)
