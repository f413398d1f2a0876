package media

import "errors"

var (
	// ErrUnsupportedFormat is returned by Open for unknown file extensions.
	ErrUnsupportedFormat = errors.New("media: unsupported file format")

	// ErrInvalidWAV is returned when a .wav file fails header validation.
	ErrInvalidWAV = errors.New("media: invalid WAV file")
)
