package markplot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	p0 := Pt(30, 20)
	p1 := Pt(50, 50)
	diff(t, p0.Lerp(p1, 0), p0)
	diff(t, p0.Lerp(p1, 1), p1)
	diff(t, p0.Lerp(p1, 0.5), Pt(40, 35))
}

func TestPointBearing(t *testing.T) {
	tests := []struct {
		to   Point
		want float64
	}{
		{Pt(0, 1), 0},
		{Pt(-1, 0), 90},
		{Pt(0, -1), 180},
		{Pt(1, 0), 270},
		{Pt(-1, 1), 45},
	}
	for _, tt := range tests {
		got := Pt(0, 0).Bearing(tt.to)
		diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported as non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN point reported as finite")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinite point reported as finite")
	}
}

func TestVec2(t *testing.T) {
	const epsilon = 1e-9
	v := Vec(3, 4)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got hypot %v, want 5", h)
	}
	diff(t, Vec(0.6, 0.8), v.Normalize(), cmpopts.EquateApprox(0, epsilon))
	diff(t, Vec(0, 0), Vec(0, 0).Normalize())
	diff(t, Vec(-4, 3), v.Turn())
	if d := v.Dot(v.Turn()); d != 0 {
		t.Errorf("turned vector is not perpendicular, dot product %v", d)
	}
	if c := v.Cross(v.Turn()); c != 25 {
		t.Errorf("got cross product %v with the turned vector, want 25", c)
	}
	if c := Vec(1, 0).CosAngle(Vec(0, 0)); c != 0 {
		t.Errorf("got cosine %v against a zero vector, want 0", c)
	}
	diff(t, Vec(0, 1), VecFromAngle(math.Pi/2), cmpopts.EquateApprox(0, epsilon))
}
