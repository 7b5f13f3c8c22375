package spectral

import "github.com/cwbudde/algo-flow/flow/field"

// Smooth applies a Gaussian low-pass filter in the frequency domain,
// multiplying each mode by exp(-sigma * (kx^2 + ky^2)).
//
// Larger sigma suppresses more high-frequency content; sigma = 0 leaves the
// field unchanged up to round-trip floating-point error. Negative sigma is
// rejected. The output is the real part of the filtered field.
func (d *Differentiator) Smooth(f *field.Field, sigma float64) (*field.Field, error) {
	if sigma < 0 {
		return nil, ErrNegativeSigma
	}

	if err := d.forward(f); err != nil {
		return nil, err
	}

	if sigma > 0 {
		nx := d.cfg.Nx
		for j := 0; j < d.cfg.Ny; j++ {
			row := j * nx
			ky2 := d.ky[j] * d.ky[j]
			for i := 0; i < nx; i++ {
				k2 := d.kx[i]*d.kx[i] + ky2
				d.spec[row+i] *= complex(envelopeExp(-sigma*k2), 0)
			}
		}
	}

	return d.inverse()
}
