package diag

import (
	"fmt"

	"github.com/cwbudde/algo-flow/diag/check"
	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/stream"
)

// Config holds the parameters of a full diagnostic run.
type Config struct {
	Grid      core.GridConfig
	Sigma     float64 // width of the Gaussian low-pass applied to the noise
	Seed      int64   // noise seed; 0 selects the generator default
	Tolerance float64 // residual tolerance; <= 0 selects core.DefaultTolerance
}

// Report bundles the derived fields and check results of a run.
type Report struct {
	Config Config
	Fields Fields
	Checks []check.Result
}

// Passed reports whether every check in the report passed.
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// normalizeConfig fills unset values with defaults.
func normalizeConfig(cfg Config) Config {
	if cfg.Grid == (core.GridConfig{}) {
		cfg.Grid = core.DefaultGridConfig()
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = core.DefaultTolerance
	}
	return cfg
}

// Run executes the full diagnostic pipeline: generate a stream function,
// derive velocity, vorticity, and Okubo-Weiss fields, and validate the
// analytic identities.
//
// The returned error covers construction and shape failures only. A failed
// identity check is reported through the Report, not as an error, so callers
// decide whether a residual above tolerance is fatal.
func Run(cfg Config) (Report, error) {
	cfg = normalizeConfig(cfg)

	gen, err := stream.NewGenerator(cfg.Grid, stream.WithSeed(cfg.Seed))
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}
	psi, err := gen.StreamFunction(cfg.Sigma)
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}

	deriver, err := NewDeriver(cfg.Grid)
	if err != nil {
		return Report{}, err
	}
	fields, err := deriver.Derive(psi)
	if err != nil {
		return Report{}, err
	}
	omega, err := deriver.VorticityFromStream(psi)
	if err != nil {
		return Report{}, err
	}

	d := deriver.Differentiator()
	continuity, err := check.Continuity(d, fields.VX, fields.VY, cfg.Tolerance)
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}
	identity, err := check.DerivativeIdentity(fields.Vorticity, omega, cfg.Tolerance)
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}
	advection, err := check.StreamAdvection(d, psi, fields.VX, fields.VY, cfg.Tolerance)
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}
	balance, err := check.SpeedBalance(d, psi, fields.VX, fields.VY, cfg.Tolerance)
	if err != nil {
		return Report{}, fmt.Errorf("diag: %w", err)
	}

	return Report{
		Config: cfg,
		Fields: fields,
		Checks: []check.Result{continuity, identity, advection, balance},
	}, nil
}
