// Package stream generates synthetic stream functions on periodic grids.
//
// A Generator draws deterministic white noise, applies a Gaussian low-pass
// in the frequency domain, and normalizes the result to unit peak. The
// output is a smooth, band-limited field suitable as a stream function for
// the diagnostics in diag.
package stream

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
	"github.com/cwbudde/algo-flow/flow/spectral"
)

// ErrZeroField reports that a generated field has zero peak amplitude and
// cannot be normalized.
var ErrZeroField = errors.New("stream: generated field has zero peak")

// Generator creates deterministic random fields on a fixed grid.
type Generator struct {
	cfg  core.GridConfig
	seed int64

	diff *spectral.Differentiator
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given grid.
func NewGenerator(cfg core.GridConfig, opts ...Option) (*Generator, error) {
	diff, err := spectral.NewDifferentiator(cfg)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	g := &Generator{
		cfg:  cfg,
		seed: 1,
		diff: diff,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Config returns the generator grid configuration.
func (g *Generator) Config() core.GridConfig {
	return g.cfg
}

// Seed returns the current random seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the random seed for subsequent noise generation.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Noise generates deterministic white noise in [-1, 1).
//
// The noise source is reseeded on every call, so repeated calls on the same
// generator produce identical fields.
func (g *Generator) Noise() (*field.Field, error) {
	out, err := field.New(g.cfg.Nx, g.cfg.Ny)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	rng := rand.New(rand.NewSource(g.seed))
	data := out.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return out, nil
}

// StreamFunction generates a smooth random stream function.
//
// White noise is low-passed by multiplying each frequency mode with
// exp(-sigma*k^2) and the result is scaled to unit peak, so the output lies
// in [-1, 1] with at least one sample at magnitude 1. sigma = 0 skips
// smoothing and returns the normalized raw noise (up to round-trip error);
// negative sigma is rejected. ErrZeroField reports a degenerate field whose
// peak is exactly zero.
func (g *Generator) StreamFunction(sigma float64) (*field.Field, error) {
	noise, err := g.Noise()
	if err != nil {
		return nil, err
	}

	psi, err := g.diff.Smooth(noise, sigma)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	peak := field.MaxAbs(psi)
	if peak == 0 {
		return nil, ErrZeroField
	}
	if err := field.ScaleInPlace(psi, 1/peak); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return psi, nil
}
