package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
)

func TestAnalyticFM_PhaseIncrements(t *testing.T) {
	const fs = 40e6
	g := NewGenerator(core.WithSampleRate(fs))

	track, err := Ramp(7.6e6, 9.3e6, 500)
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}

	z, err := g.AnalyticFM(track)
	if err != nil {
		t.Fatalf("AnalyticFM() error = %v", err)
	}

	if z[0] != 1 {
		t.Fatalf("z[0] = %v, want 1", z[0])
	}

	for i := 1; i < len(z); i++ {
		step := cmplx.Phase(z[i] * cmplx.Conj(z[i-1]))
		want := math.Remainder(2*math.Pi*track[i-1]/fs, 2*math.Pi)
		if math.Abs(step-want) > 1e-9 {
			t.Fatalf("step %d: %v rad, want %v rad", i, step, want)
		}
		if math.Abs(cmplx.Abs(z[i])-1) > 1e-12 {
			t.Fatalf("sample %d: |z| = %v", i, cmplx.Abs(z[i]))
		}
	}
}

func TestFM_IsRealPartOfAnalytic(t *testing.T) {
	g := NewGenerator()
	track, _ := Ramp(3e6, 12e6, 128)

	x, err := g.FM(track, 0.5)
	if err != nil {
		t.Fatalf("FM() error = %v", err)
	}
	z, err := g.AnalyticFM(track)
	if err != nil {
		t.Fatalf("AnalyticFM() error = %v", err)
	}

	for i := range x {
		if math.Abs(x[i]-0.5*real(z[i])) > 1e-12 {
			t.Fatalf("sample %d: %v vs %v", i, x[i], 0.5*real(z[i]))
		}
	}
}

func TestFM_Errors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.FM(nil, 1); err == nil {
		t.Fatal("expected error for empty track")
	}
	if _, err := g.AnalyticFM([]float64{}); err == nil {
		t.Fatal("expected error for empty track")
	}
}

func TestRamp(t *testing.T) {
	r, err := Ramp(1, 3, 5)
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	want := []float64{1, 1.5, 2, 2.5, 3}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d]=%v, want %v", i, r[i], want[i])
		}
	}

	single, _ := Ramp(4, 9, 1)
	if len(single) != 1 || single[0] != 4 {
		t.Fatalf("single = %v", single)
	}

	if _, err := Ramp(0, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}
