package diag

import (
	"fmt"

	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
	"github.com/cwbudde/algo-flow/flow/spectral"
)

// Fields bundles a stream function with the diagnostics derived from it.
type Fields struct {
	Psi        *field.Field
	VX         *field.Field
	VY         *field.Field
	Speed      *field.Field
	Vorticity  *field.Field
	OkuboWeiss *field.Field
}

// Deriver computes velocity, vorticity, and Okubo-Weiss fields from a
// stream function via spectral derivatives on a fixed grid.
type Deriver struct {
	diff *spectral.Differentiator
}

// NewDeriver creates a deriver for the given grid.
func NewDeriver(cfg core.GridConfig) (*Deriver, error) {
	diff, err := spectral.NewDifferentiator(cfg)
	if err != nil {
		return nil, fmt.Errorf("diag: %w", err)
	}
	return &Deriver{diff: diff}, nil
}

// GridConfig returns the grid the deriver operates on.
func (dv *Deriver) GridConfig() core.GridConfig {
	return dv.diff.GridConfig()
}

// Differentiator exposes the underlying spectral differentiator, so checks
// and callers can reuse its precomputed plans.
func (dv *Deriver) Differentiator() *spectral.Differentiator {
	return dv.diff
}

// Velocity computes the velocity components of the flow described by psi:
//
//	vx = +dpsi/dy
//	vy = -dpsi/dx
//
// With this sign convention the flow circulates counterclockwise around
// minima of psi. The opposite convention only flips the sign of the
// vorticity; the validation identities are unaffected.
func (dv *Deriver) Velocity(psi *field.Field) (vx, vy *field.Field, err error) {
	vx, err = dv.diff.DY(psi)
	if err != nil {
		return nil, nil, fmt.Errorf("diag: velocity: %w", err)
	}
	dx, err := dv.diff.DX(psi)
	if err != nil {
		return nil, nil, fmt.Errorf("diag: velocity: %w", err)
	}
	vy, err = field.Scale(dx, -1)
	if err != nil {
		return nil, nil, fmt.Errorf("diag: velocity: %w", err)
	}
	return vx, vy, nil
}

// Vorticity computes omega = dvy/dx - dvx/dy from the velocity components.
func (dv *Deriver) Vorticity(vx, vy *field.Field) (*field.Field, error) {
	dvy, err := dv.diff.DX(vy)
	if err != nil {
		return nil, fmt.Errorf("diag: vorticity: %w", err)
	}
	dvx, err := dv.diff.DY(vx)
	if err != nil {
		return nil, fmt.Errorf("diag: vorticity: %w", err)
	}
	omega, err := field.Sub(dvy, dvx)
	if err != nil {
		return nil, fmt.Errorf("diag: vorticity: %w", err)
	}
	return omega, nil
}

// VorticityFromStream computes the vorticity directly from the stream
// function as -laplacian(psi). For velocities derived by Velocity this
// agrees with Vorticity up to round-off, which the derivative-identity
// check exploits.
func (dv *Deriver) VorticityFromStream(psi *field.Field) (*field.Field, error) {
	lap, err := dv.diff.Laplacian(psi)
	if err != nil {
		return nil, fmt.Errorf("diag: vorticity from stream: %w", err)
	}
	omega, err := field.Scale(lap, -1)
	if err != nil {
		return nil, fmt.Errorf("diag: vorticity from stream: %w", err)
	}
	return omega, nil
}

// OkuboWeiss computes the Okubo-Weiss parameter from second derivatives of
// the stream function:
//
//	Q = psi_xy^2 - psi_xx * psi_yy
//
// Positive Q marks strain-dominated regions, negative Q vortex cores.
func (dv *Deriver) OkuboWeiss(psi *field.Field) (*field.Field, error) {
	psiXY, err := dv.diff.Derivative(psi, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}
	psiXX, err := dv.diff.Derivative(psi, 2, 0)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}
	psiYY, err := dv.diff.Derivative(psi, 0, 2)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}

	shear, err := field.Mul(psiXY, psiXY)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}
	normal, err := field.Mul(psiXX, psiYY)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}
	q, err := field.Sub(shear, normal)
	if err != nil {
		return nil, fmt.Errorf("diag: okubo-weiss: %w", err)
	}
	return q, nil
}

// Speed computes the point-wise flow speed sqrt(vx^2 + vy^2).
func (dv *Deriver) Speed(vx, vy *field.Field) (*field.Field, error) {
	s, err := field.Magnitude(vx, vy)
	if err != nil {
		return nil, fmt.Errorf("diag: speed: %w", err)
	}
	return s, nil
}

// Derive computes the full diagnostic bundle for a stream function.
func (dv *Deriver) Derive(psi *field.Field) (Fields, error) {
	vx, vy, err := dv.Velocity(psi)
	if err != nil {
		return Fields{}, err
	}
	speed, err := dv.Speed(vx, vy)
	if err != nil {
		return Fields{}, err
	}
	omega, err := dv.Vorticity(vx, vy)
	if err != nil {
		return Fields{}, err
	}
	q, err := dv.OkuboWeiss(psi)
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		Psi:        psi,
		VX:         vx,
		VY:         vy,
		Speed:      speed,
		Vorticity:  omega,
		OkuboWeiss: q,
	}, nil
}
