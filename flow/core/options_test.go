package core

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithGridSize(128, 96), WithSpacing(0.5, 0.25))
	if cfg.Nx != 128 || cfg.Ny != 96 {
		t.Fatalf("grid size = %dx%d, want 128x96", cfg.Nx, cfg.Ny)
	}
	if cfg.Dx != 0.5 || cfg.Dy != 0.25 {
		t.Fatalf("spacing = %gx%g, want 0.5x0.25", cfg.Dx, cfg.Dy)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(WithGridSize(0, -3), WithSpacing(-1, 0))
	def := DefaultGridConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestWithSquareGrid(t *testing.T) {
	cfg := ApplyOptions(WithSquareGrid(32))
	if cfg.Nx != 32 || cfg.Ny != 32 {
		t.Fatalf("grid size = %dx%d, want 32x32", cfg.Nx, cfg.Ny)
	}
	if cfg.Points() != 1024 {
		t.Fatalf("points = %d, want 1024", cfg.Points())
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultGridConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := GridConfig{Nx: 0, Ny: 64, Dx: 1, Dy: 1}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero grid dimension")
	}

	bad = GridConfig{Nx: 64, Ny: 64, Dx: 0, Dy: 1}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero spacing")
	}
}
