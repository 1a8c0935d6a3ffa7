package core

import (
	"testing"

	"github.com/lixenwraith/crab-arena/vmath"
)

func TestSideAxesPointInward(t *testing.T) {
	const h = 10.0
	for _, s := range Sides {
		centre := s.GoalCentre(h)
		if got := s.SignedDistance(centre, h); !vmath.ApproxEqual(got, 0, 1e-12) {
			t.Errorf("%v: expected goal centre on the line, got distance %v", s, got)
		}
		if got := s.SignedDistance(vmath.Vec3F{}, h); !vmath.ApproxEqual(got, h, 1e-12) {
			t.Errorf("%v: expected arena centre at distance %v, got %v", s, h, got)
		}
		if vmath.V3FDot(s.Axis(), s.Tangent()) != 0 {
			t.Errorf("%v: expected tangent perpendicular to axis", s)
		}
	}
}

func TestSideLocalRoundTrip(t *testing.T) {
	const h = 10.0
	for _, s := range Sides {
		for _, local := range []float64{-7.5, 0, 3.25} {
			world := s.LocalToWorld(local, h)
			if got := s.WorldToLocal(world); !vmath.ApproxEqual(got, local, 1e-12) {
				t.Errorf("%v: expected local %v, got %v", s, local, got)
			}
			if got := s.SignedDistance(world, h); !vmath.ApproxEqual(got, 0, 1e-12) {
				t.Errorf("%v: expected point on goal line, got distance %v", s, got)
			}
		}
	}
}

func TestSideGoalPositions(t *testing.T) {
	const h = 10.0
	want := map[Side]vmath.Vec3F{
		SideTop:    {Z: -h},
		SideRight:  {X: h},
		SideBottom: {Z: h},
		SideLeft:   {X: -h},
	}
	for s, w := range want {
		if got := s.GoalCentre(h); !vmath.V3FApproxEqual(got, w, 1e-12) {
			t.Errorf("%v: expected %+v, got %+v", s, w, got)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, s := range Sides {
		got, err := ParseSide(" " + s.String() + " ")
		if err != nil || got != s {
			t.Errorf("Expected %v, got %v (%v)", s, got, err)
		}
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Error("Expected error for unknown side")
	}
	if got := Side(9).String(); got != "side(9)" {
		t.Errorf("Expected side(9), got %q", got)
	}
}

func TestForceFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want Force
	}{
		{1, ForcePositive},
		{5, ForcePositive},
		{0, ForceNone},
		{-1, ForceNegative},
	}
	for _, tt := range tests {
		if got := ForceFromInt(tt.in); got != tt.want {
			t.Errorf("ForceFromInt(%d): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if ForceNegative.Sign() != -1 || ForceNone.Sign() != 0 {
		t.Error("Expected signs -1 and 0")
	}
}
