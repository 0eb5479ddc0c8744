package core

import "testing"

func TestWindowClampsAtEdges(t *testing.T) {
	g := NewGrid[uint8](5, 4)
	cases := []struct {
		x, y           int
		x0, y0, x1, y1 int
	}{
		{0, 0, 0, 0, 2, 2},
		{4, 3, 3, 2, 5, 4},
		{2, 1, 1, 0, 4, 3},
		{4, 0, 3, 0, 5, 2},
	}
	for _, tc := range cases {
		x0, y0, x1, y1 := g.Window(tc.x, tc.y)
		if x0 != tc.x0 || y0 != tc.y0 || x1 != tc.x1 || y1 != tc.y1 {
			t.Fatalf("Window(%d,%d) = [%d,%d)x[%d,%d), expected [%d,%d)x[%d,%d)",
				tc.x, tc.y, x0, x1, y0, y1, tc.x0, tc.x1, tc.y0, tc.y1)
		}
	}
}

func TestGridAccessors(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Fill(7)
	g.Set(2, 1, 9)
	if g.At(2, 1) != 9 || g.Cells()[g.Index(2, 1)] != 9 {
		t.Fatal("Set/At mismatch")
	}
	*g.Ptr(0, 0) = 1
	if g.Cells()[0] != 1 {
		t.Fatal("Ptr must address the backing slice")
	}
	if g.InBounds(3, 0) || g.InBounds(0, -1) || !g.InBounds(2, 1) {
		t.Fatal("InBounds mismatch")
	}

	dst := NewGrid[int](3, 2)
	if !dst.CopyFrom(g) || dst.At(2, 1) != 9 {
		t.Fatal("CopyFrom should copy equal-sized grids")
	}
	if dst.CopyFrom(NewGrid[int](2, 2)) {
		t.Fatal("CopyFrom must reject mismatched grids")
	}

	if z := NewGrid[int](0, -1); z.W != 1 || z.H != 1 {
		t.Fatalf("degenerate dimensions should clamp to 1, got %dx%d", z.W, z.H)
	}
}
