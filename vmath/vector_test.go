package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Fatalf("Normalize(0,0) = %+v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Fatal("Normalize produced NaN")
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{
		{3, 4},
		{-7, 0},
		{0.001, -0.002},
		{1e6, 1e6},
	}
	for _, v := range tests {
		if got := v.Normalize().Length(); math.Abs(got-1) > epsilon {
			t.Errorf("|Normalize(%v)| = %v, want 1", v, got)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add = %v, want {4 -2}", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub = %v, want {-2 6}", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale = %v, want {1.5 -2}", got)
	}
	if got := Distance(V(0, 0), V(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 3)
	if math.Abs(v.X) > epsilon || math.Abs(v.Y-3) > epsilon {
		t.Errorf("FromAngle(π/2, 3) = %v, want {0 3}", v)
	}
	if math.Abs(v.Length()-3) > epsilon {
		t.Errorf("magnitude = %v, want 3", v.Length())
	}
}

func TestClampToRect(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", V(100, 100), V(100, 100)},
		{"left top", V(-50, 5), V(20, 20)},
		{"right bottom", V(900, 700), V(780, 580)},
		{"edge exact", V(20, 580), V(20, 580)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampToRect(tt.in, 20, 800, 600); got != tt.want {
				t.Errorf("ClampToRect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFastRandRange(t *testing.T) {
	rng := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := rng.Range(2, 4)
		if v < 2 || v >= 4 {
			t.Fatalf("Range(2,4) = %v out of [2,4)", v)
		}
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v out of [0,1)", f)
		}
		n := rng.Intn(4)
		if n < 0 || n >= 4 {
			t.Fatalf("Intn(4) = %d out of range", n)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	rng := NewFastRand(0)
	if rng.Next() == 0 {
		t.Fatal("zero seed must not produce a stuck generator")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(7)
	b := NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}
