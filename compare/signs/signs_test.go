package signs

import (
	"errors"
	"testing"

	"github.com/crawfordgroup/spectra/spectrum"
)

func TestWrongSignsFlipDetection(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{1, 2, 3}},
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{1, -2, 3}},
	}

	displacements, signValues, err := WrongSigns(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDisp := []float64{0, 0, 0}
	wantSigns := []int{1, -1, 1}

	for a := range wantDisp {
		if displacements[a] != wantDisp[a] {
			t.Fatalf("displacement[%d]: got %f, want %f", a, displacements[a], wantDisp[a])
		}

		if signValues[a] != wantSigns[a] {
			t.Fatalf("sign[%d]: got %d, want %d", a, signValues[a], wantSigns[a])
		}
	}
}

func TestWrongSignsDisplacement(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{100, 200, 300}, Intensities: []float64{1, 1, 1}},
		{Frequencies: []float64{90, 205, 300}, Intensities: []float64{2, 2, 2}},
	}

	displacements, signValues, err := WrongSigns(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDisp := []float64{10, -5, 0}
	for a, want := range wantDisp {
		if displacements[a] != want {
			t.Fatalf("displacement[%d]: got %f, want %f", a, displacements[a], want)
		}

		if signValues[a] != 1 {
			t.Fatalf("sign[%d]: got %d, want 1", a, signValues[a])
		}
	}
}

func TestWrongSignsZeroSampleIntensity(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1}, Intensities: []float64{1, 2}},
		{Frequencies: []float64{0, 1}, Intensities: []float64{1, 0}},
	}

	if _, _, err := WrongSigns(col, 1, 0); !errors.Is(err, ErrDegenerateSign) {
		t.Fatalf("expected ErrDegenerateSign, got %v", err)
	}
}

func TestWrongSignsZeroReferenceIntensity(t *testing.T) {
	// A zero reference against a nonzero sample gives an infinite ratio,
	// which still carries a usable sign.
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1}, Intensities: []float64{1, 0}},
		{Frequencies: []float64{0, 1}, Intensities: []float64{1, -2}},
	}

	_, signValues, err := WrongSigns(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if signValues[1] != -1 {
		t.Fatalf("sign[1]: got %d, want -1", signValues[1])
	}
}

func TestModeReorderingSingleFlip(t *testing.T) {
	// Reference rises everywhere; the sample dips between indices 1 and 2.
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1, 2, 3}, Intensities: []float64{1, 2, 4, 8}},
		{Frequencies: []float64{0, 1, 2, 3}, Intensities: []float64{1, 3, 2, 6}},
	}

	slopeSigns, err := ModeReordering(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, -1, 1, NoSuccessor}
	for a, w := range want {
		if slopeSigns[a] != w {
			t.Fatalf("slot %d: got %d, want %d", a, slopeSigns[a], w)
		}
	}
}

func TestModeReorderingIdenticalCurves(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{5, 1, 4}},
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{5, 1, 4}},
	}

	slopeSigns, err := ModeReordering(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 1, NoSuccessor}
	for a, w := range want {
		if slopeSigns[a] != w {
			t.Fatalf("slot %d: got %d, want %d", a, slopeSigns[a], w)
		}
	}
}

func TestModeReorderingFlatSampleSegment(t *testing.T) {
	// A flat sample segment yields a zero slope ratio, which is degenerate.
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{1, 2, 3}},
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{1, 1, 3}},
	}

	if _, err := ModeReordering(col, 1, 0); !errors.Is(err, ErrDegenerateSign) {
		t.Fatalf("expected ErrDegenerateSign, got %v", err)
	}
}

func TestModeReorderingSinglePoint(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0}, Intensities: []float64{1}},
		{Frequencies: []float64{0}, Intensities: []float64{2}},
	}

	slopeSigns, err := ModeReordering(col, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slopeSigns) != 1 || slopeSigns[0] != NoSuccessor {
		t.Fatalf("got %v, want [0]", slopeSigns)
	}
}

func TestLengthMismatch(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0, 1, 2}, Intensities: []float64{1, 2, 3}},
		{Frequencies: []float64{0, 1}, Intensities: []float64{1, 2}},
	}

	if _, _, err := WrongSigns(col, 1, 0); !errors.Is(err, spectrum.ErrLengthMismatch) {
		t.Fatalf("WrongSigns: expected ErrLengthMismatch, got %v", err)
	}

	if _, err := ModeReordering(col, 1, 0); !errors.Is(err, spectrum.ErrLengthMismatch) {
		t.Fatalf("ModeReordering: expected ErrLengthMismatch, got %v", err)
	}
}

func TestInvalidIndex(t *testing.T) {
	col := spectrum.Collection{
		{Frequencies: []float64{0}, Intensities: []float64{1}},
	}

	if _, _, err := WrongSigns(col, 0, 1); !errors.Is(err, spectrum.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}
