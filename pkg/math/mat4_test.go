package math

import (
	"math"
	"testing"
)

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if result != want {
		t.Errorf("TransformPoint: got %v, want %v", result, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After a 90 degree Y rotation, (1,0,0) goes to approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestTranslateComposition(t *testing.T) {
	// Translating forth and back must cancel exactly.
	m := Identity().
		Mul(Translate(3, 0, -7)).
		Mul(Translate(-3, 0, 7))

	want := Identity()
	for i := 0; i < 16; i++ {
		if m[i] != want[i] {
			t.Fatalf("element %d: got %f, want %f", i, m[i], want[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 2, 0}
	center := Vec3{0, 2, 20}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// The eye maps to the view-space origin.
	p := m.TransformPoint(eye)
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z) > 0.001 {
		t.Errorf("eye should map to origin, got %v", p)
	}

	// A point straight ahead maps onto the negative view z axis.
	q := m.TransformPoint(center)
	if abs(q.X) > 0.001 || abs(q.Y) > 0.001 || q.Z >= 0 {
		t.Errorf("look target should be ahead on -z, got %v", q)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 800.0/600.0, 0.1, 500)

	// A point on the near plane center projects to NDC z = -1.
	p := m.TransformPoint(Vec3{0, 0, -0.1})
	if abs(p.Z+1) > 0.01 {
		t.Errorf("near plane should map to z=-1, got %v", p.Z)
	}

	if m[11] != -1 {
		t.Errorf("perspective w row: got %f, want -1", m[11])
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Radians(0); got != 0 {
		t.Errorf("Radians(0) = %v, want 0", got)
	}
}
