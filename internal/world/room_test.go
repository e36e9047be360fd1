package world

import "testing"

func TestRoomCenter(t *testing.T) {
	tests := []struct {
		room   Room
		cx, cy int
	}{
		{Room{X: 1, Y: 1, Width: 5, Height: 5}, 3, 3},
		{Room{X: 2, Y: 4, Width: 6, Height: 9}, 5, 8},
		{Room{X: 0, Y: 0, Width: 1, Height: 1}, 0, 0},
	}

	for _, tt := range tests {
		cx, cy := tt.room.Center()
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.room, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestRoomIntersects(t *testing.T) {
	r1 := Room{X: 0, Y: 0, Width: 10, Height: 10}
	r2 := Room{X: 5, Y: 5, Width: 10, Height: 10} // Overlapping
	r3 := Room{X: 20, Y: 20, Width: 5, Height: 5} // Far away
	r4 := Room{X: 10, Y: 0, Width: 5, Height: 5}  // Touching edge, half-open

	if !r1.Intersects(r2) || !r2.Intersects(r1) {
		t.Error("Rooms should intersect")
	}
	if r1.Intersects(r3) || r3.Intersects(r1) {
		t.Error("Rooms should NOT intersect")
	}
	if r1.Intersects(r4) {
		t.Error("Adjacent rooms should NOT intersect")
	}
}

func TestRoomOverlapsWithPadding(t *testing.T) {
	base := Room{X: 5, Y: 5, Width: 5, Height: 5}

	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"gap of one column", Room{X: 11, Y: 5, Width: 5, Height: 5}, true},
		{"gap of two columns", Room{X: 12, Y: 5, Width: 5, Height: 5}, false},
		{"gap of one row above", Room{X: 5, Y: -1, Width: 5, Height: 5}, true},
		{"gap of two rows above", Room{X: 5, Y: -2, Width: 5, Height: 5}, false},
		{"diagonal, close on both axes", Room{X: 11, Y: 11, Width: 3, Height: 3}, true},
		{"diagonal, far on one axis", Room{X: 11, Y: 12, Width: 3, Height: 3}, false},
		{"identical", base, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other, RoomPadding); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base, RoomPadding); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoomInterior(t *testing.T) {
	in := Room{X: 3, Y: 4, Width: 5, Height: 6}.Interior()
	if in != (Room{X: 4, Y: 5, Width: 3, Height: 4}) {
		t.Errorf("unexpected interior %+v", in)
	}

	thin := Room{X: 0, Y: 0, Width: 1, Height: 2}.Interior()
	if thin.Width != 0 || thin.Height != 0 {
		t.Errorf("thin room should have empty interior, got %+v", thin)
	}
	if thin.Area() != 0 {
		t.Errorf("empty interior area = %d", thin.Area())
	}
}
