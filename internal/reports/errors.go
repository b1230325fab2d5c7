package reports

import "errors"

var (
	// ErrNotFound indicates the requested report does not exist.
	ErrNotFound = errors.New("report not found")
	// ErrTextTooShort indicates an input text below the minimum usable
	// length; detected before the scoring core is invoked.
	ErrTextTooShort = errors.New("text too short to analyze")
)
