package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translate: got %v, want (5, 10, 15)", got)
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"translate then scale", Translate(1, 0, 0).Mul(Scale(2, 2, 2)), Vec3{1, 1, 1}, Vec3{3, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformVec3(tt.in); got != tt.want {
				t.Errorf("TransformVec3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAxisY90(t *testing.T) {
	m := RotateAxis(Vec3{0, 1, 0}, float32(math.Pi/2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateAxis Y 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateAxisNormalizesAxis(t *testing.T) {
	a := RotateAxis(Vec3{0, 5, 0}, 1.2)
	b := RotateAxis(Vec3{0, 1, 0}, 1.2)
	if !a.ApproxEqual(b, 1e-6) {
		t.Errorf("unnormalized axis: got %v, want %v", a, b)
	}
	if RotateAxis(Vec3{}, 1) != Identity() {
		t.Error("zero axis should yield identity")
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 2, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("LookAt(eye) * eye = %v, want origin", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
