package geom

import "testing"

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	if m.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1 (fully opaque)", m.Opacity)
	}
	if m.IndirectDiffuse != 0 {
		t.Errorf("IndirectDiffuse = %v, want 0", m.IndirectDiffuse)
	}
	if m.RefractiveIndex != 1 {
		t.Errorf("RefractiveIndex = %v, want 1 (vacuum)", m.RefractiveIndex)
	}
	if m.Refractive {
		t.Error("Refractive = true, want false by default")
	}
}
