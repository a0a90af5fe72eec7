package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewVector_RejectsZero(t *testing.T) {
	if _, err := NewVector(0, 0, 0); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}

	v, err := NewVector(1, 2, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != NewVec3(1, 2, 3) {
		t.Errorf("Expected (1,2,3), got %v", v)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 3, -4)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(-1, 5, -1)},
		{"subtract", a.Subtract(b), NewVec3(3, -1, 7)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(-2, 6, -12)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(-17, -2, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != -8 {
		t.Errorf("Expected dot -8, got %f", dot)
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 3, -4)
	c := a.Cross(b)

	if !IsZero(c.Dot(a)) || !IsZero(c.Dot(b)) {
		t.Errorf("Cross product %v is not orthogonal to its operands", c)
	}
	if math.Abs(c.Length()-math.Sqrt(342)) > 1e-9 {
		t.Errorf("Expected |a x b| = sqrt(342), got %f", c.Length())
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.ApproxEqual(NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Expected (0,0.6,0.8), got %v", v)
	}

	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Expected zero vector to normalize to itself, got %v", got)
	}
}

func TestVec3_LowerThan(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"all below", NewVec3(0.0001, 0.0005, 0), true},
		{"one channel above", NewVec3(0.0001, 0.5, 0), false},
		{"equal to cutoff", Uniform(0.001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.LowerThan(0.001); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestVec3_IsSimilar(t *testing.T) {
	base := NewVec3(100, 100, 100)
	if !base.IsSimilar(NewVec3(100.5, 99.5, 100), 1) {
		t.Error("Expected colors within threshold to be similar")
	}
	if base.IsSimilar(NewVec3(100, 100, 102), 1) {
		t.Error("Expected colors beyond threshold on one channel to differ")
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-5, 128, 300).Clamp(0, 255)
	if got != NewVec3(0, 128, 255) {
		t.Errorf("Expected (0,128,255), got %v", got)
	}
}

func TestAlignZero(t *testing.T) {
	if AlignZero(1e-12) != 0 {
		t.Error("Expected tiny value to align to zero")
	}
	if AlignZero(1e-3) != 1e-3 {
		t.Error("Expected regular value to be unchanged")
	}
	if Sign(-1e-12) != 0 || Sign(-2) != -1 || Sign(3) != 1 {
		t.Error("Unexpected Sign result")
	}
}
