package analytic

import "fmt"

// Envelope writes |z[i]| into dst.
func Envelope(dst []float64, z []complex128) error {
	if len(dst) != len(z) {
		return fmt.Errorf("%w: dst %d, z %d", ErrLengthMismatch, len(dst), len(z))
	}

	magnitude(dst, z)

	return nil
}
