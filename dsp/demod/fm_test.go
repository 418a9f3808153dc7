package demod

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rfdemod/internal/testutil"
)

const sampleRate = 40e6

func TestFM_ToneRecovery(t *testing.T) {
	tests := []struct {
		name   string
		toneHz float64
		phase0 float64
	}{
		{name: "8.1 MHz", toneHz: 8.1e6, phase0: 0},
		{name: "3.58 MHz offset phase", toneHz: 3.579545e6, phase0: 2.5},
		{name: "near nyquist", toneHz: 19.5e6, phase0: -1},
		{name: "dc", toneHz: 0, phase0: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := testutil.AnalyticTone(tt.toneHz/sampleRate, tt.phase0, 0.7, 4096)

			out, err := FM(z, sampleRate)
			if err != nil {
				t.Fatalf("FM: %v", err)
			}

			if len(out) != len(z) {
				t.Fatalf("len = %d, want %d", len(out), len(z))
			}
			if out[0] != 0 {
				t.Fatalf("out[0] = %v, want 0", out[0])
			}
			for i := 1; i < len(out); i++ {
				if math.Abs(out[i]-tt.toneHz) > 1e-3 {
					t.Fatalf("out[%d] = %v, want %v", i, out[i], tt.toneHz)
				}
			}
		})
	}
}

func TestFM_OutputRange(t *testing.T) {
	// Phase noise with large jumps must still fold into [0, freq).
	noise := testutil.DeterministicNoise(3, 20, 2048)
	z := make([]complex128, len(noise))
	for i, p := range noise {
		z[i] = cmplx.Rect(1, p)
	}

	out, err := FM(z, 1)
	if err != nil {
		t.Fatalf("FM: %v", err)
	}

	testutil.RequireFinite(t, out)
	for i, v := range out {
		if v < 0 || v >= 1 {
			t.Fatalf("out[%d] = %v outside [0, 1)", i, v)
		}
	}
}

func TestFM_NegativeToneAliases(t *testing.T) {
	z := testutil.AnalyticTone(-0.1, 0, 1, 256)

	out, err := FM(z, 1)
	if err != nil {
		t.Fatalf("FM: %v", err)
	}

	for i := 1; i < len(out); i++ {
		if math.Abs(out[i]-0.9) > 1e-9 {
			t.Fatalf("out[%d] = %v, want 0.9", i, out[i])
		}
	}
}

func TestFM_DoesNotModifyInput(t *testing.T) {
	z := testutil.AnalyticTone(0.2, 0, 1, 64)
	orig := append([]complex128(nil), z...)

	if _, err := FM(z, sampleRate); err != nil {
		t.Fatalf("FM: %v", err)
	}

	for i := range z {
		if z[i] != orig[i] {
			t.Fatalf("z[%d] modified", i)
		}
	}
}

func TestFMInto_MatchesFM(t *testing.T) {
	z := testutil.AnalyticTone(0.13, 0.3, 1, 333)

	want, err := FM(z, sampleRate)
	if err != nil {
		t.Fatalf("FM: %v", err)
	}

	got := make([]float64, len(z))
	if err := FMInto(got, z, sampleRate); err != nil {
		t.Fatalf("FMInto: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestFM_Errors(t *testing.T) {
	if _, err := FM(nil, sampleRate); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("FM(nil) err = %v, want ErrEmptyInput", err)
	}

	err := FMInto(make([]float64, 3), make([]complex128, 4), sampleRate)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("FMInto err = %v, want ErrLengthMismatch", err)
	}
}

func BenchmarkFM(b *testing.B) {
	z := testutil.AnalyticTone(0.2, 0, 1, 1<<16)
	out := make([]float64, len(z))

	b.ReportAllocs()
	b.SetBytes(int64(len(z) * 16))
	b.ResetTimer()

	for range b.N {
		_ = FMInto(out, z, sampleRate)
	}
}
