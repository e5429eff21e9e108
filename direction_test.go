package badge

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/text/language"
)

func TestDirectionForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   LayoutDirection
	}{
		{"en-US", LeftToRight},
		{"ja", LeftToRight},
		{"ar", RightToLeft},
		{"ar-EG", RightToLeft},
		{"he", RightToLeft},
		{"fa-IR", RightToLeft},
		{"ur", RightToLeft},
		{"az-Latn", LeftToRight},
		{"az-Arab", RightToLeft},
		{"not a locale!", LeftToRight},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := DirectionForLocale(tt.locale); got != tt.want {
				t.Errorf("DirectionForLocale(%q) = %v, want %v", tt.locale, got, tt.want)
			}
		})
	}
}

func TestDirectionForLanguage(t *testing.T) {
	if got := DirectionForLanguage(language.Hebrew); got != RightToLeft {
		t.Errorf("DirectionForLanguage(Hebrew) = %v, want rtl", got)
	}
	if got := DirectionForLanguage(language.German); got != LeftToRight {
		t.Errorf("DirectionForLanguage(German) = %v, want ltr", got)
	}
}

func TestDirectionForText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LayoutDirection
	}{
		{"empty", "", LeftToRight},
		{"latin", "Settings", LeftToRight},
		{"arabic", "مرحبا", RightToLeft},
		{"hebrew", "שלום", RightToLeft},
		{"digits then hebrew", "42 שלום", RightToLeft},
		{"digits then latin", "42 items", LeftToRight},
		{"neutral only", "123 !?", LeftToRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionForText(tt.text); got != tt.want {
				t.Errorf("DirectionForText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionTypesettingRoundTrip(t *testing.T) {
	for _, d := range []LayoutDirection{LeftToRight, RightToLeft} {
		if got := DirectionFromTypesetting(d.Typesetting()); got != d {
			t.Errorf("round trip of %v = %v", d, got)
		}
	}
	if got := DirectionFromTypesetting(di.DirectionTTB); got != LeftToRight {
		t.Errorf("DirectionFromTypesetting(TTB) = %v, want ltr", got)
	}
}

func TestCornerResolve(t *testing.T) {
	tests := []struct {
		corner Corner
		dir    LayoutDirection
		want   Corner
	}{
		{TopLeading, LeftToRight, TopLeading},
		{TopLeading, RightToLeft, TopTrailing},
		{TopTrailing, RightToLeft, TopLeading},
		{BottomLeading, RightToLeft, BottomTrailing},
		{BottomTrailing, RightToLeft, BottomLeading},
		{BottomTrailing, LeftToRight, BottomTrailing},
	}

	for _, tt := range tests {
		if got := tt.corner.Resolve(tt.dir); got != tt.want {
			t.Errorf("%v.Resolve(%v) = %v, want %v", tt.corner, tt.dir, got, tt.want)
		}
	}
}

func TestCornerGeometry(t *testing.T) {
	r := XYWH(10, 20, 100, 50)
	tests := []struct {
		corner Corner
		point  Point
		inward Vec2
	}{
		{TopLeading, Pt(10, 20), V2(1, 1)},
		{TopTrailing, Pt(110, 20), V2(-1, 1)},
		{BottomLeading, Pt(10, 70), V2(1, -1)},
		{BottomTrailing, Pt(110, 70), V2(-1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			if got := tt.corner.Point(r); got != tt.point {
				t.Errorf("Point() = %v, want %v", got, tt.point)
			}
			if got := tt.corner.Inward(); got != tt.inward {
				t.Errorf("Inward() = %v, want %v", got, tt.inward)
			}
			// An inset point always lands inside the box.
			if p := tt.corner.inset(r, 5); !r.Contains(p) {
				t.Errorf("inset(5) = %v outside %v", p, r)
			}
		})
	}
}

func TestLayoutDirectionString(t *testing.T) {
	if LeftToRight.String() != "ltr" || RightToLeft.String() != "rtl" {
		t.Errorf("String() = %q/%q", LeftToRight.String(), RightToLeft.String())
	}
}
