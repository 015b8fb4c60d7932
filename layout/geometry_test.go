package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConstraints(t *testing.T) {
	tests := []struct {
		name                   string
		minW, maxW, minH, maxH float64
		wantErr                bool
	}{
		{name: "valid", minW: 0, maxW: 10, minH: 5, maxH: 5},
		{name: "infinite", minW: 0, maxW: Inf, minH: 0, maxH: Inf},
		{name: "min width over max", minW: 11, maxW: 10, minH: 0, maxH: 5, wantErr: true},
		{name: "min height over max", minW: 0, maxW: 10, minH: 6, maxH: 5, wantErr: true},
		{name: "negative min", minW: -1, maxW: 10, minH: 0, maxH: 5, wantErr: true},
		{name: "negative max", minW: 0, maxW: -1, minH: 0, maxH: 5, wantErr: true},
		{name: "nan", minW: math.NaN(), maxW: 10, minH: 0, maxH: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConstraints(tt.minW, tt.maxW, tt.minH, tt.maxH)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConstraints) {
					t.Fatalf("NewConstraints() error = %v, want %v", err, ErrInvalidConstraints)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConstraints() unexpected error: %v", err)
			}
			if !c.Valid() {
				t.Errorf("Valid() = false for %s", c)
			}
		})
	}
}

func TestConstraints(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 50}

	if got := c.Clamp(Size{Width: 5, Height: 80}); got != (Size{Width: 10, Height: 50}) {
		t.Errorf("Clamp() = %v, want 10x50", got)
	}
	if right, down := c.Overflows(Size{Width: 101, Height: 10}); !right || down {
		t.Errorf("Overflows() = %v, %v, want true, false", right, down)
	}
	if right, down := c.Overflows(Size{Width: 50, Height: 51}); right || !down {
		t.Errorf("Overflows() = %v, %v, want false, true", right, down)
	}
	if !c.Fits(Size{Width: 10, Height: 50}) {
		t.Error("Fits() = false for inclusive bounds")
	}
	if !c.TooSmall(Size{Width: 9, Height: 30}) {
		t.Error("TooSmall() = false for narrow size")
	}
	if !c.TooBig(Size{Width: 10, Height: 51}) {
		t.Error("TooBig() = false for tall size")
	}
	if got := c.WithMin(Size{Width: 5, Height: 30}); got.MinWidth != 10 || got.MinHeight != 30 || got.MaxHeight != 50 {
		t.Errorf("WithMin() = %v", got)
	}
	if got := c.ShrinkBy(95, 40); got != (Constraints{MinWidth: 5, MaxWidth: 5, MinHeight: 10, MaxHeight: 10}) {
		t.Errorf("ShrinkBy() = %v", got)
	}
	if got := c.ExtendDown(Size{Width: 1, Height: 1}); got != (Size{Width: 1, Height: 50}) {
		t.Errorf("ExtendDown() = %v", got)
	}
	if got := c.ExtendRight(Size{Width: 1, Height: 1}); got != (Size{Width: 100, Height: 1}) {
		t.Errorf("ExtendRight() = %v", got)
	}

	inf := loose(Inf, 10).ShrinkBy(100, 5)
	if !math.IsInf(inf.MaxWidth, 1) || inf.MaxHeight != 5 || !inf.IsInfinite() {
		t.Errorf("ShrinkBy() on infinite = %v", inf)
	}
}

func TestSize(t *testing.T) {
	a, b := Size{Width: 10, Height: 20}, Size{Width: 15, Height: 5}

	if got := a.Add(b); got != (Size{Width: 25, Height: 25}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Max(b); got != (Size{Width: 15, Height: 20}) {
		t.Errorf("Max() = %v", got)
	}
	if got := a.Mul(vertical); got != (Size{Width: 0, Height: 20}) {
		t.Errorf("Mul() = %v", got)
	}
	if got := a.Strict(); !got.Fits(a) || got.Fits(b) {
		t.Errorf("Strict() = %v", got)
	}
	if got := a.Loose(); got.MinSize() != (Size{}) || got.MaxSize() != a {
		t.Errorf("Loose() = %v", got)
	}
	if !(Size{Width: Inf}).IsInfinite() || a.IsInfinite() {
		t.Error("IsInfinite() mismatch")
	}
	if got := a.String(); got != "10x20" {
		t.Errorf("String() = %q", got)
	}
	if got := (Size{Width: Inf, Height: 1.5}).String(); got != "infx1.5" {
		t.Errorf("String() = %q", got)
	}

	fit := FitLayouts([]*Layout{{Size: a}, {Size: b}})
	if diff := cmp.Diff(Size{Width: 15, Height: 20}, fit); diff != "" {
		t.Errorf("FitLayouts() mismatch (-want +got):\n%s", diff)
	}
}

// Any successful layout must honor the constraints it was given.
func TestLayoutSizeWithinConstraints(t *testing.T) {
	nodes := map[string]Node{
		"vstack":  VStack(boxes(6, 20, 15)...),
		"hstack":  HStack(boxes(3, 20, 15)...),
		"expand":  Expand(),
		"padding": PadAll(3).With(NewBox(10, 10)),
		"center":  Center().With(NewBox(10, 10)),
		"right":   Right().With(NewBox(10, 10)),
		"flow":    NewFlow(boxes(7, 15, 10)...),
		"layers":  NewLayers(NewBox(5, 40), NewBox(40, 5)),
		"ensure":  EnsureSize(30, 30).With(Empty()),
		"empty":   Empty(),
		"outline": NewOutline(DefaultOutlineStyle).With(NewBox(8, 8)),
		"divide":  HDivide(Inf, 10).With(Expand(), Expand()),
	}
	constraints := []Constraints{
		loose(100, 100),
		loose(60, 40),
		{MinWidth: 50, MaxWidth: 80, MinHeight: 20, MaxHeight: 60},
		{MinWidth: 70, MaxWidth: 70, MinHeight: 70, MaxHeight: 70},
	}
	for name, n := range nodes {
		for _, c := range constraints {
			t.Run(name+" "+c.String(), func(t *testing.T) {
				l, err := pageLayout(t, n, c)
				if err != nil {
					var oe *OverflowError
					if !errors.As(err, &oe) {
						t.Fatalf("unexpected error: %v", err)
					}
					return
				}
				if !c.Fits(l.Size) {
					t.Errorf("size %v does not fit into %v", l.Size, c)
				}
			})
		}
	}
}
