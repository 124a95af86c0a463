package script

import "errors"

// Errors for extension script operations.
var (
	// ErrClosed is returned when operating on a closed extension.
	ErrClosed = errors.New("script: extension is closed")

	// ErrNoCallback is returned when the script defines no highlight function.
	ErrNoCallback = errors.New("script: no highlight function defined")

	// ErrOutOfRange is raised inside Lua when a buffer access is out of bounds.
	ErrOutOfRange = errors.New("range out of bounds")
)
