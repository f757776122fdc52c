package service

import "errors"

var (
	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrStore wraps any database failure. Details stay in the server log.
	ErrStore = errors.New("store error")
	// ErrProvider wraps a push provider failure. Its message is safe to echo.
	ErrProvider = errors.New("push provider error")
)
