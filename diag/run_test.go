package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-flow/diag/check"
	"github.com/cwbudde/algo-flow/flow/core"
	"github.com/cwbudde/algo-flow/flow/field"
	"github.com/cwbudde/algo-flow/flow/spectral"
	"github.com/cwbudde/algo-flow/internal/testutil"
)

func TestRunScenario(t *testing.T) {
	// Reference scenario: 64x64 grid, sigma 5, seed 42. Every identity holds
	// well below the default tolerance.
	report, err := Run(Config{
		Grid:  core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1},
		Sigma: 5,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Checks) != 4 {
		t.Fatalf("len(Checks) = %d, want 4", len(report.Checks))
	}
	if !report.Passed() {
		t.Errorf("report did not pass")
	}
	for _, c := range report.Checks {
		if !c.Passed {
			t.Errorf("%s failed: max residual %g, tol %g", c.Name, c.MaxAbs, c.Tol)
		}
		if c.MaxAbs >= 1e-10 {
			t.Errorf("%s residual = %g, want < 1e-10", c.Name, c.MaxAbs)
		}
	}

	for _, f := range []*field.Field{
		report.Fields.Psi, report.Fields.VX, report.Fields.VY,
		report.Fields.Speed, report.Fields.Vorticity, report.Fields.OkuboWeiss,
	} {
		testutil.RequireFieldFinite(t, f)
	}
}

func TestRunContinuityAcrossSizes(t *testing.T) {
	for _, n := range []int{32, 64, 128} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			report, err := Run(Config{
				Grid:  core.GridConfig{Nx: n, Ny: n, Dx: 1, Dy: 1},
				Sigma: 1,
				Seed:  42,
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			for _, c := range report.Checks {
				if c.Name != "continuity" {
					continue
				}
				if c.MaxAbs >= 1e-10 {
					t.Errorf("max divergence = %g, want < 1e-10", c.MaxAbs)
				}
			}
		})
	}
}

func TestRunDefaultSigma(t *testing.T) {
	// Sigma 1 on a 64x64 unit grid, the flowdiag defaults for -sigma and -n.
	// Light smoothing leaves real energy near the Nyquist bands, which every
	// identity has to survive.
	report, err := Run(Config{
		Grid:  core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1},
		Sigma: 1,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.Passed() {
		t.Errorf("report did not pass")
	}
	for _, c := range report.Checks {
		if !c.Passed {
			t.Errorf("%s failed: max residual %g, tol %g", c.Name, c.MaxAbs, c.Tol)
		}
	}
}

func TestRunRectangularGrid(t *testing.T) {
	// Unequal axis lengths and anisotropic spacing give the two axes
	// different wavenumber ranges and different Nyquist bins.
	report, err := Run(Config{
		Grid:  core.GridConfig{Nx: 48, Ny: 96, Dx: 0.5, Dy: 2},
		Sigma: 1,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.Passed() {
		t.Errorf("report did not pass")
	}
	for _, c := range report.Checks {
		if !c.Passed {
			t.Errorf("%s failed: max residual %g, tol %g", c.Name, c.MaxAbs, c.Tol)
		}
	}
	if report.Fields.Psi.Nx() != 48 || report.Fields.Psi.Ny() != 96 {
		t.Errorf("psi shape = %dx%d, want 48x96",
			report.Fields.Psi.Nx(), report.Fields.Psi.Ny())
	}
}

func TestRunVorticityIdentity(t *testing.T) {
	report, err := Run(Config{
		Grid:  core.GridConfig{Nx: 64, Ny: 64, Dx: 1, Dy: 1},
		Sigma: 5,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	found := false
	for _, c := range report.Checks {
		if c.Name == "derivative identity" {
			found = true
			if !c.Passed || c.MaxAbs >= 1e-10 {
				t.Errorf("vorticity identity: passed=%v max=%g", c.Passed, c.MaxAbs)
			}
		}
	}
	if !found {
		t.Error("no derivative identity check in report")
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{
		Grid:  core.GridConfig{Nx: 32, Ny: 32, Dx: 1, Dy: 1},
		Sigma: 2,
		Seed:  7,
	}

	r1, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	r2, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	testutil.RequireFieldsNearlyEqual(t, r1.Fields.Psi, r2.Fields.Psi, 0)
	testutil.RequireFieldsNearlyEqual(t, r1.Fields.Vorticity, r2.Fields.Vorticity, 0)
	testutil.RequireFieldsNearlyEqual(t, r1.Fields.OkuboWeiss, r2.Fields.OkuboWeiss, 0)
}

func TestRunDefaults(t *testing.T) {
	report, err := Run(Config{Sigma: 1})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	def := core.DefaultGridConfig()
	if report.Config.Grid != def {
		t.Errorf("Grid = %+v, want default %+v", report.Config.Grid, def)
	}
	if report.Config.Seed != 1 {
		t.Errorf("Seed = %d, want 1", report.Config.Seed)
	}
	if report.Config.Tolerance != core.DefaultTolerance {
		t.Errorf("Tolerance = %g, want %g", report.Config.Tolerance, core.DefaultTolerance)
	}
	if report.Fields.Psi.Nx() != def.Nx || report.Fields.Psi.Ny() != def.Ny {
		t.Errorf("psi shape = %dx%d, want %dx%d",
			report.Fields.Psi.Nx(), report.Fields.Psi.Ny(), def.Nx, def.Ny)
	}
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(Config{
		Grid:  core.GridConfig{Nx: 32, Ny: 32, Dx: 1, Dy: 1},
		Sigma: -1,
	})
	if !errors.Is(err, spectral.ErrNegativeSigma) {
		t.Errorf("expected ErrNegativeSigma, got %v", err)
	}

	_, err = Run(Config{
		Grid:  core.GridConfig{Nx: -4, Ny: 32, Dx: 1, Dy: 1},
		Sigma: 1,
	})
	if err == nil {
		t.Error("expected error for invalid grid")
	}
}

func TestReportPassed(t *testing.T) {
	r := Report{Checks: []check.Result{
		{Name: "a", Passed: true},
		{Name: "b", Passed: true},
	}}
	if !r.Passed() {
		t.Error("expected pass when all checks pass")
	}

	r.Checks[1].Passed = false
	if r.Passed() {
		t.Error("expected failure when any check fails")
	}

	empty := Report{}
	if !empty.Passed() {
		t.Error("expected empty report to pass")
	}
}
