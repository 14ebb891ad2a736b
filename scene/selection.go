package scene

// MeshKind selects which mesh is drawn.
type MeshKind int

const (
	MeshCube MeshKind = iota
	MeshPyramid
)

func (k MeshKind) String() string {
	switch k {
	case MeshCube:
		return "cube"
	case MeshPyramid:
		return "pyramid"
	}
	return "unknown"
}

// Next returns the other mesh.
func (k MeshKind) Next() MeshKind {
	if k == MeshCube {
		return MeshPyramid
	}
	return MeshCube
}

// MeshToggle flips the selected mesh on each key press. Holding the key
// does not repeat the flip; it must be released first.
type MeshToggle struct {
	Selected MeshKind

	pressedLastFrame bool
}

// Update feeds the key state polled for the current frame and returns the
// selection to draw. It reports whether the selection changed.
func (t *MeshToggle) Update(pressed bool) (MeshKind, bool) {
	changed := pressed && !t.pressedLastFrame
	if changed {
		t.Selected = t.Selected.Next()
	}
	t.pressedLastFrame = pressed
	return t.Selected, changed
}
