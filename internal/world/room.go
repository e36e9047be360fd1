package world

// RoomPadding is the minimum number of wall cells kept between two rooms.
const RoomPadding = 2

// Room represents a rectangular room in the dungeon.
// X and Y are the top-left corner; the room covers [X, X+Width) x [Y, Y+Height).
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Overlaps returns true if the rooms are closer than padding cells on both axes.
// The test is symmetric: a.Overlaps(b, p) == b.Overlaps(a, p).
func (r Room) Overlaps(other Room, padding int) bool {
	return r.X < other.X+other.Width+padding &&
		r.X+r.Width+padding > other.X &&
		r.Y < other.Y+other.Height+padding &&
		r.Y+r.Height+padding > other.Y
}

// Interior returns the room without its 1-cell border.
// Rooms narrower than 3 cells have an empty interior.
func (r Room) Interior() Room {
	in := Room{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

// Area returns the number of cells covered by the room.
func (r Room) Area() int {
	return r.Width * r.Height
}
