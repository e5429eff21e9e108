package badge

import (
	"errors"
	"image"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}
	if mask.At(50, 50) != 0 {
		t.Errorf("expected 0, got %d", mask.At(50, 50))
	}
	if mask.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Errorf("Bounds() = %v", mask.Bounds())
	}
}

func TestMaskSetAt(t *testing.T) {
	mask := NewMask(10, 10)
	mask.Set(3, 4, 200)
	if got := mask.At(3, 4); got != 200 {
		t.Errorf("At(3, 4) = %d, want 200", got)
	}

	// Out of bounds is ignored on write and zero on read.
	mask.Set(-1, 0, 255)
	mask.Set(10, 10, 255)
	if got := mask.At(-1, 0); got != 0 {
		t.Errorf("At(-1, 0) = %d, want 0", got)
	}
	if got := mask.At(10, 10); got != 0 {
		t.Errorf("At(10, 10) = %d, want 0", got)
	}
}

func TestNewMaskFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 4, 3))
	img.Pix[1*img.Stride+2] = 77

	mask := NewMaskFromAlpha(img)
	if mask.Width() != 4 || mask.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", mask.Width(), mask.Height())
	}
	if got := mask.At(2, 1); got != 77 {
		t.Errorf("At(2, 1) = %d, want 77", got)
	}
	if len(mask.Data()) != 12 {
		t.Errorf("len(Data()) = %d, want 12", len(mask.Data()))
	}
}

func TestRasterBoundaryContains(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 40)

	rb, err := NewRasterBoundary(p, 2)
	if err != nil {
		t.Fatalf("NewRasterBoundary() = %v", err)
	}

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(50, 50), true},
		{"inside edge", Pt(85, 50), true},
		{"bbox corner", Pt(13, 13), false},
		{"outside bbox", Pt(200, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rb.ContainsPoint(tt.pt, FillRuleNonZero); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestRasterBoundaryEvenOddUsesPath(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 100, 100)
	p.Rectangle(25, 25, 50, 50)

	rb, err := NewRasterBoundary(p, 1)
	if err != nil {
		t.Fatalf("NewRasterBoundary() = %v", err)
	}
	if !rb.ContainsPoint(Pt(50, 50), FillRuleNonZero) {
		t.Error("non-zero raster should cover the doubled square")
	}
	if rb.ContainsPoint(Pt(50, 50), FillRuleEvenOdd) {
		t.Error("even-odd query should see the hole")
	}
}

func TestRasterBoundaryPlacement(t *testing.T) {
	rb, err := NewRasterBoundary(notchShape(), 1)
	if err != nil {
		t.Fatalf("NewRasterBoundary() = %v", err)
	}

	pl, err := NewPlacer(DefaultBadgeSpec())
	if err != nil {
		t.Fatalf("NewPlacer() = %v", err)
	}
	got := pl.Place(PathShape(rb), LeftToRight)
	if !got.OK {
		t.Fatal("Place() found nothing in the rasterized notch")
	}
	if !CircleFits(rb, got.Point, defaultRadius(), FillRuleNonZero) {
		t.Errorf("Place() = %v does not fit the raster", got.Point)
	}
	if got.Point.Y > 60 {
		t.Errorf("Place() = %v, want a point in the top bar", got.Point)
	}
}

func TestNewRasterBoundaryErrors(t *testing.T) {
	big := NewPath()
	big.Rectangle(0, 0, 10000, 10000)

	tests := []struct {
		name  string
		path  *Path
		scale float64
		want  error
	}{
		{"nil path", nil, 1, ErrEmptyBoundary},
		{"empty path", NewPath(), 1, ErrEmptyBoundary},
		{"zero scale", notchShape(), 0, ErrInvalidConfig},
		{"too large", big, 1, ErrRasterTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRasterBoundary(tt.path, tt.scale)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewRasterBoundary() error = %v, want %v", err, tt.want)
			}
		})
	}
}
