package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrNilSource describes a RasterizedGlyph that carries a nil source
	// image. Allocate panics with this error's message on that condition;
	// no function in this package returns it.
	ErrNilSource = errors.New("atlas: rasterized glyph has a nil source image")

	// ErrInvalidBoundingBox describes an inverted bounding box (right < left
	// or bottom < top). Allocate panics with this error's message on that
	// condition; no function in this package returns it.
	ErrInvalidBoundingBox = errors.New("atlas: bounding box has negative extent")
)

// ConfigError represents a configuration validation error, in the spirit of
// a field-and-reason diagnostic rather than a bare string.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
