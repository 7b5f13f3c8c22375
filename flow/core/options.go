package core

import "fmt"

// GridConfig defines the periodic computation grid shared by all components.
//
// The grid spans Nx x Ny sample points with physical spacing Dx and Dy.
// Fields are treated as periodic along both axes.
type GridConfig struct {
	Nx int
	Ny int
	Dx float64
	Dy float64
}

// Option mutates a GridConfig.
type Option func(*GridConfig)

// DefaultGridConfig returns a unit-spaced 64x64 grid.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Nx: 64,
		Ny: 64,
		Dx: 1,
		Dy: 1,
	}
}

// WithGridSize sets the number of sample points per axis.
func WithGridSize(nx, ny int) Option {
	return func(cfg *GridConfig) {
		if nx > 0 && ny > 0 {
			cfg.Nx = nx
			cfg.Ny = ny
		}
	}
}

// WithSquareGrid sets both axes to n sample points.
func WithSquareGrid(n int) Option {
	return WithGridSize(n, n)
}

// WithSpacing sets the physical grid spacing per axis.
func WithSpacing(dx, dy float64) Option {
	return func(cfg *GridConfig) {
		if dx > 0 && dy > 0 {
			cfg.Dx = dx
			cfg.Dy = dy
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) GridConfig {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config describes a usable grid.
func (cfg GridConfig) Validate() error {
	if cfg.Nx <= 0 || cfg.Ny <= 0 {
		return fmt.Errorf("grid size must be positive: %dx%d", cfg.Nx, cfg.Ny)
	}
	if cfg.Dx <= 0 || cfg.Dy <= 0 {
		return fmt.Errorf("grid spacing must be positive: %gx%g", cfg.Dx, cfg.Dy)
	}
	return nil
}

// Points returns the total number of grid points.
func (cfg GridConfig) Points() int {
	return cfg.Nx * cfg.Ny
}
