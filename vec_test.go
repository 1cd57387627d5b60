package sprite

import "testing"

func TestVec2(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: 4}
	if (a.Add(b) != Vec2{X: 4, Y: 6}) {
		t.Errorf("Add = %v", a.Add(b))
	}
	if (a.Scale(b) != Vec2{X: 3, Y: 8}) {
		t.Errorf("Scale = %v", a.Scale(b))
	}
}

func TestVec3Add(t *testing.T) {
	got := Vec3{X: 1, Y: 2, Z: 3}.Add(Vec3{X: -1, Y: -2, Z: -3})
	if (got != Vec3{}) {
		t.Errorf("Add = %v, want zero", got)
	}
}

func TestVec4Vec3(t *testing.T) {
	v := Vec4{X: 1, Y: 2, Z: 3, W: 4}
	if (v.Vec3() != Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Vec3 = %v", v.Vec3())
	}
}
