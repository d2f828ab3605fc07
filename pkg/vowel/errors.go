package vowel

import "errors"

var (
	// ErrConfig is wrapped by every configuration validation error.
	ErrConfig = errors.New("vowel: invalid config")

	// ErrFrameSize is returned when the configured frame size is not a
	// power of two.
	ErrFrameSize = errors.New("vowel: frame size must be a power of two")

	// ErrFrameLength is returned when a frame passed to Process does not
	// match the configured frame size.
	ErrFrameLength = errors.New("vowel: frame length does not match frame size")
)
