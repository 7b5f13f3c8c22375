// Package diag derives standard 2D flow diagnostics from a stream function
// and validates their analytic identities.
//
// For an incompressible 2D flow described by a stream function psi, the
// package computes:
//
//   - Velocity: vx = +dpsi/dy, vy = -dpsi/dx
//   - Speed: point-wise magnitude sqrt(vx^2 + vy^2)
//   - Vorticity: omega = dvy/dx - dvx/dy, equivalently -laplacian(psi)
//   - Okubo-Weiss: Q = psi_xy^2 - psi_xx*psi_yy, separating strain-dominated
//     regions (Q > 0) from vortex cores (Q < 0)
//
// All derivatives are spectral, so on a periodic grid the identities these
// fields satisfy (zero divergence, the two vorticity forms agreeing) hold to
// round-off. The diag/check package grades those residuals against a
// tolerance.
//
// # Usage
//
// Derive fields step by step:
//
//	dv, err := diag.NewDeriver(core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1})
//	vx, vy, err := dv.Velocity(psi)
//	omega, err := dv.Vorticity(vx, vy)
//
// Or run the full generate-derive-validate pipeline:
//
//	report, err := diag.Run(diag.Config{
//		Grid:  core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1},
//		Sigma: 5,
//		Seed:  42,
//	})
//	if !report.Passed() {
//		// inspect report.Checks for residual magnitudes
//	}
package diag
