package window

import (
	"math"
	"testing"
)

func TestGenerateTypes(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeRectangular} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}

	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
}

func TestHannSymmetricAndPeriodic(t *testing.T) {
	sym, err := Hann(8)
	if err != nil {
		t.Fatalf("Hann: %v", err)
	}

	if sym[0] != 0 || math.Abs(sym[7]) > 1e-15 {
		t.Fatalf("symmetric edges=%g,%g want 0,0", sym[0], sym[7])
	}

	per, err := Hann(8, WithPeriodic())
	if err != nil {
		t.Fatalf("Hann periodic: %v", err)
	}

	if math.Abs(per[4]-1) > 1e-15 {
		t.Fatalf("periodic center=%g want 1", per[4])
	}

	if math.Abs(per[7]-per[1]) > 1e-15 {
		t.Fatalf("periodic window not symmetric around n/2: %g vs %g", per[7], per[1])
	}

	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 1.5},
		{TypeHamming, 1.3628},
	}

	for _, tt := range tests {
		enbw, err := EquivalentNoiseBandwidth(Generate(tt.typ, 4096, WithPeriodic()))
		if err != nil {
			t.Fatalf("%s: %v", tt.typ, err)
		}

		if math.Abs(enbw-tt.want) > 1e-3 {
			t.Fatalf("%s ENBW=%g want=%g", tt.typ, enbw, tt.want)
		}
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}

	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); err == nil {
		t.Fatal("expected error for zero coherent gain")
	}
}

func TestPowerGain(t *testing.T) {
	// Periodic Hann: mean of w^2 is 3/8.
	pg, err := PowerGain(Generate(TypeHann, 1024, WithPeriodic()))
	if err != nil {
		t.Fatalf("PowerGain: %v", err)
	}

	if math.Abs(pg-0.375) > 1e-12 {
		t.Fatalf("power gain=%g want=0.375", pg)
	}

	pg, err = PowerGain(Generate(TypeRectangular, 16))
	if err != nil || pg != 1 {
		t.Fatalf("rectangular power gain=%g err=%v want 1", pg, err)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	if err := ApplyCoefficientsInPlace(buf, []float64{0, 0.5, 1, 2}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := []float64{0, 1, 3, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d]=%g want=%g", i, buf[i], want[i])
		}
	}

	if err := ApplyCoefficientsInPlace(buf, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
