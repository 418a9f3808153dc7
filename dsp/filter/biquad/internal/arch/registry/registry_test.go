package registry

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "unroll2", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "unroll4", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	if got := reg.Names(); !slices.Equal(got, []string{"unroll4", "sse2", "unroll2"}) {
		t.Fatalf("Names = %v", got)
	}

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{name: "avx2", features: cpu.Features{HasSSE2: true, HasAVX2: true}, want: "unroll4"},
		{name: "sse2", features: cpu.Features{HasSSE2: true}, want: "sse2"},
		{name: "none", features: cpu.Features{}, want: "unroll2"},
		{name: "forced generic", features: cpu.Features{HasAVX2: true, ForceGeneric: true}, want: "unroll2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil || entry.Name != tt.want {
				t.Fatalf("expected %s, got %#v", tt.want, entry)
			}
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil, got %#v", entry)
	}
}
