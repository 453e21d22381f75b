package transfer

import (
	"math"

	"gokern/domain/core"
)

// DefaultFov is the default output grid side length in pixels. The grid
// size is the only configuration field with a safe default.
const DefaultFov = 80

// Config holds the instrument configuration for the builder.
type Config struct {
	Fov        int     // output grid side length, pixels (square grid)
	Wavelength float64 // monochromatic wavelength, meters
	Pitch      float64 // angular pixel size, radians per pixel
}

// DefaultConfig returns a config with the default grid size. Wavelength
// and pitch are two independent required inputs and must be set by the
// caller; neither is ever derived from the other.
func DefaultConfig() Config {
	return Config{Fov: DefaultFov}
}

// Validate ensures every required field is set and physically sensible.
func (c Config) Validate() error {
	if c.Fov <= 0 {
		return core.NewConfigurationError("config.Fov", "must be a positive pixel count")
	}
	if math.IsNaN(c.Wavelength) || c.Wavelength <= 0 {
		return core.NewConfigurationError("config.Wavelength", "must be a positive wavelength in meters")
	}
	if math.IsNaN(c.Pitch) || c.Pitch <= 0 {
		return core.NewConfigurationError("config.Pitch", "must be a positive pixel pitch in radians")
	}
	return nil
}
