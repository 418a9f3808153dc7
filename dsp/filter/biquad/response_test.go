package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := rbjLowpass(3e6, 40e6, 0.7071)
	for _, f := range []float64{0, 1e6, 3e6, 10e6, 19e6} {
		h := c.Response(f, 40e6)
		want := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(f, 40e6); !almostEqual(got, want, 1e-12) {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestLowpassShape(t *testing.T) {
	c := rbjLowpass(3e6, 40e6, 0.7071)
	if db := c.MagnitudeDB(0, 40e6); math.Abs(db) > 1e-9 {
		t.Fatalf("DC gain %v dB, want 0", db)
	}
	if db := c.MagnitudeDB(3e6, 40e6); math.Abs(db+3.0103) > 0.01 {
		t.Fatalf("cutoff gain %v dB, want -3", db)
	}
	if db := c.MagnitudeDB(15e6, 40e6); db > -20 {
		t.Fatalf("stopband gain %v dB, want < -20", db)
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain[float64](coeffs)

	for _, f := range []float64{100, 1000, 10000} {
		want := coeffs[0].Response(f, 48000) * coeffs[1].Response(f, 48000)
		got := c.Response(f, 48000)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
		if db := c.MagnitudeDB(f, 48000); !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Fatalf("f=%v: MagnitudeDB %v", f, db)
		}
	}
}

func TestChain_ImpulseResponse(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain[float64](coeffs)
	c.ProcessSample(0.7)
	saved := c.State()

	ir := c.ImpulseResponse(16)

	ref := NewChain[float64](coeffs)
	for i, v := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if want := ref.ProcessSample(x); !almostEqual(v, want, eps) {
			t.Fatalf("ir[%d] = %v, want %v", i, v, want)
		}
	}

	if st := c.State(); st[0] != saved[0] || st[1] != saved[1] {
		t.Fatalf("state not restored: %v vs %v", st, saved)
	}
	if c.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n=0")
	}
}
