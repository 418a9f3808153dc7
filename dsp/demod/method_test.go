package demod

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rfdemod/internal/testutil"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{in: "exact", want: MethodExact},
		{in: " FAST ", want: MethodFast},
		{in: "Exact", want: MethodExact},
		{in: "numpy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMethod) {
					t.Fatalf("err = %v, want ErrUnknownMethod", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if back, _ := ParseMethod(got.String()); back != got {
				t.Fatalf("round trip %v -> %v", got, back)
			}
		})
	}
}

func TestMethod_StringUnknown(t *testing.T) {
	if got := Method(7).String(); got != "Method(7)" {
		t.Fatalf("String = %q", got)
	}
}

func TestDemodulate_Dispatch(t *testing.T) {
	z := testutil.AnalyticTone(0.2, 0, 1, 100)

	exact, err := Demodulate(MethodExact, z, 10)
	if err != nil {
		t.Fatalf("Demodulate exact: %v", err)
	}
	want, _ := FM(z, 10)
	testutil.RequireSliceNearlyEqual(t, exact, want, 0)

	fast, err := Demodulate(MethodFast, z, 10)
	if err != nil {
		t.Fatalf("Demodulate fast: %v", err)
	}
	want, _ = FMFast(z, 10)
	testutil.RequireSliceNearlyEqual(t, fast, want, 0)

	dst := make([]float64, len(z))
	if err := DemodulateInto(MethodFast, dst, z, 10); err != nil {
		t.Fatalf("DemodulateInto: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, want, 0)

	if _, err := Demodulate(Method(-1), z, 10); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("err = %v, want ErrUnknownMethod", err)
	}
	if err := DemodulateInto(Method(9), dst, z, 10); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("err = %v, want ErrUnknownMethod", err)
	}
}
