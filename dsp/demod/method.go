package demod

import (
	"fmt"
	"strings"
)

// Method selects a demodulation strategy.
type Method int

const (
	// MethodExact uses [FM].
	MethodExact Method = iota
	// MethodFast uses [FMFast].
	MethodFast
)

// String returns the method name accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodFast:
		return "fast"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "exact" or "fast" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return MethodExact, nil
	case "fast":
		return MethodFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Demodulate runs the strategy selected by m.
func Demodulate(m Method, z []complex128, freq float64) ([]float64, error) {
	switch m {
	case MethodExact:
		return FM(z, freq)
	case MethodFast:
		return FMFast(z, freq)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// DemodulateInto runs the strategy selected by m, writing into dst.
func DemodulateInto(m Method, dst []float64, z []complex128, freq float64) error {
	switch m {
	case MethodExact:
		return FMInto(dst, z, freq)
	case MethodFast:
		return FMFastInto(dst, z, freq)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}
