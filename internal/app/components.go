package app

import (
	"go.trai.ch/packsmith/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Close releases the telemetry session and the log file, if any.
func (c *Components) Close() error {
	err := c.Telemetry.Close()
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
