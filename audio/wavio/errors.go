package wavio

import "errors"

// Failure categories. Returned errors wrap one of these and, where there is
// one, the underlying cause.
var (
	ErrFileNotFound      = errors.New("wavio: file not found")
	ErrInvalidFormat     = errors.New("wavio: invalid WAV file")
	ErrUnsupportedFormat = errors.New("wavio: unsupported WAV format")
	ErrRead              = errors.New("wavio: read error")
	ErrWrite             = errors.New("wavio: write error")
	ErrInvalidParameter  = errors.New("wavio: invalid parameter")
)
