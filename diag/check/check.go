// Package check validates analytic identities of derived flow fields.
//
// Each check computes a residual field that vanishes analytically and
// compares its largest sample magnitude against a tolerance. A failed check
// is a value, not an error: errors report broken inputs (shape mismatches,
// invalid derivatives), while Passed reports whether the identity holds
// numerically. Callers can log, render, or assert on the residual.
package check

import (
	"fmt"

	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
	"github.com/cwbudde/algo-flow/flow/spectral"
)

// Result reports the outcome of a single identity check.
type Result struct {
	Name     string
	Passed   bool
	MaxAbs   float64      // largest absolute residual sample
	Tol      float64      // tolerance the residual was compared against
	Residual *field.Field // full residual field, for reporting or rendering
}

// newResult grades a residual field. tol <= 0 selects the default tolerance.
func newResult(name string, residual *field.Field, tol float64) Result {
	if tol <= 0 {
		tol = core.DefaultTolerance
	}
	maxAbs := field.MaxAbs(residual)
	return Result{
		Name:     name,
		Passed:   maxAbs < tol,
		MaxAbs:   maxAbs,
		Tol:      tol,
		Residual: residual,
	}
}

// Continuity checks that the velocity field (vx, vy) is divergence-free.
//
// The residual is dvx/dx + dvy/dy, which vanishes analytically for any
// velocity field derived from a stream function.
func Continuity(d *spectral.Differentiator, vx, vy *field.Field, tol float64) (Result, error) {
	dvx, err := d.DX(vx)
	if err != nil {
		return Result{}, fmt.Errorf("check: continuity: %w", err)
	}
	dvy, err := d.DY(vy)
	if err != nil {
		return Result{}, fmt.Errorf("check: continuity: %w", err)
	}

	residual, err := field.Add(dvx, dvy)
	if err != nil {
		return Result{}, fmt.Errorf("check: continuity: %w", err)
	}
	return newResult("continuity", residual, tol), nil
}

// DerivativeIdentity checks that two independently computed versions of the
// same field agree. The residual is a - b.
func DerivativeIdentity(a, b *field.Field, tol float64) (Result, error) {
	residual, err := field.Sub(a, b)
	if err != nil {
		return Result{}, fmt.Errorf("check: derivative identity: %w", err)
	}
	return newResult("derivative identity", residual, tol), nil
}

// StreamAdvection checks that the flow does not advect its own stream
// function: vx*dpsi/dx + vy*dpsi/dy vanishes when (vx, vy) derive from psi,
// because the velocity is everywhere tangent to the psi isolines.
func StreamAdvection(d *spectral.Differentiator, psi, vx, vy *field.Field, tol float64) (Result, error) {
	psiX, psiY, err := gradient(d, psi)
	if err != nil {
		return Result{}, fmt.Errorf("check: stream advection: %w", err)
	}

	ax, err := field.Mul(vx, psiX)
	if err != nil {
		return Result{}, fmt.Errorf("check: stream advection: %w", err)
	}
	ay, err := field.Mul(vy, psiY)
	if err != nil {
		return Result{}, fmt.Errorf("check: stream advection: %w", err)
	}
	residual, err := field.Add(ax, ay)
	if err != nil {
		return Result{}, fmt.Errorf("check: stream advection: %w", err)
	}
	return newResult("stream advection", residual, tol), nil
}

// SpeedBalance checks that the speed matches the stream-function gradient:
// vx^2 + vy^2 - (dpsi/dx)^2 - (dpsi/dy)^2 vanishes when (vx, vy) derive
// from psi, since the velocity is the rotated gradient.
func SpeedBalance(d *spectral.Differentiator, psi, vx, vy *field.Field, tol float64) (Result, error) {
	psiX, psiY, err := gradient(d, psi)
	if err != nil {
		return Result{}, fmt.Errorf("check: speed balance: %w", err)
	}

	v2, err := squaredSum(vx, vy)
	if err != nil {
		return Result{}, fmt.Errorf("check: speed balance: %w", err)
	}
	g2, err := squaredSum(psiX, psiY)
	if err != nil {
		return Result{}, fmt.Errorf("check: speed balance: %w", err)
	}
	residual, err := field.Sub(v2, g2)
	if err != nil {
		return Result{}, fmt.Errorf("check: speed balance: %w", err)
	}
	return newResult("speed balance", residual, tol), nil
}

func gradient(d *spectral.Differentiator, f *field.Field) (*field.Field, *field.Field, error) {
	fx, err := d.DX(f)
	if err != nil {
		return nil, nil, err
	}
	fy, err := d.DY(f)
	if err != nil {
		return nil, nil, err
	}
	return fx, fy, nil
}

// squaredSum returns a^2 + b^2 element-wise.
func squaredSum(a, b *field.Field) (*field.Field, error) {
	a2, err := field.Mul(a, a)
	if err != nil {
		return nil, err
	}
	b2, err := field.Mul(b, b)
	if err != nil {
		return nil, err
	}
	return field.Add(a2, b2)
}
