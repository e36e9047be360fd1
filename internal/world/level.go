package world

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Point is a coordinate pair. Spawn and exit points are in world (pixel) space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Level is the result of a single generation run.
// The generator never touches a Level after returning it.
type Level struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileSize int      `json:"tileSize"`
	Seed     int64    `json:"seed,omitempty"`
	Tiles    [][]Tile `json:"tiles"`
	Rooms    []Room   `json:"rooms"`
	Spawn    Point    `json:"spawn"`
	Exit     Point    `json:"exit"`
}

// InBounds reports whether the tile coordinate lies inside the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// TileAt returns the tile at the given position.
// Positions outside the grid read as wall.
func (l *Level) TileAt(x, y int) Tile {
	if !l.InBounds(x, y) {
		return TileWall
	}
	return l.Tiles[y][x]
}

// IsWalkable returns true if the given position can be walked on.
func (l *Level) IsWalkable(x, y int) bool {
	return l.TileAt(x, y).IsWalkable()
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (l *Level) RoomIndexAt(x, y int) int {
	for i, room := range l.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Count returns the number of tiles of the given kind.
func (l *Level) Count(kind Tile) int {
	n := 0
	for _, row := range l.Tiles {
		for _, t := range row {
			if t == kind {
				n++
			}
		}
	}
	return n
}

// Census returns the number of tiles per kind. Every kind is present in the map.
func (l *Level) Census() map[Tile]int {
	census := make(map[Tile]int, len(Tiles))
	for _, t := range Tiles {
		census[t] = 0
	}
	for _, row := range l.Tiles {
		for _, t := range row {
			census[t]++
		}
	}
	return census
}

// SpawnTile returns the spawn point in tile coordinates.
func (l *Level) SpawnTile() (int, int) {
	return l.toTile(l.Spawn)
}

// ExitTile returns the exit point in tile coordinates.
func (l *Level) ExitTile() (int, int) {
	return l.toTile(l.Exit)
}

func (l *Level) toTile(p Point) (int, int) {
	if l.TileSize <= 0 {
		return p.X, p.Y
	}
	return p.X / l.TileSize, p.Y / l.TileSize
}

// Reachable returns every walkable tile reachable from (x, y) by 4-neighbour steps.
// The set is empty when the start tile is not walkable.
func (l *Level) Reachable(x, y int) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !l.IsWalkable(x, y) {
		return visited
	}

	queue := []Point{{X: x, Y: y}}
	visited.Put(queue[0])
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := []Point{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if l.IsWalkable(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Connected returns true if every room center is reachable from the first room.
// A level without rooms is trivially connected.
func (l *Level) Connected() bool {
	if len(l.Rooms) == 0 {
		return true
	}
	reachable := l.Reachable(l.Rooms[0].Center())
	for _, room := range l.Rooms[1:] {
		cx, cy := room.Center()
		if !reachable.Has(Point{X: cx, Y: cy}) {
			return false
		}
	}
	return true
}

// String renders the grid as rows of tile runes.
func (l *Level) String() string {
	var b strings.Builder
	b.Grow((l.Width + 1) * l.Height)
	for _, row := range l.Tiles {
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Clone returns a deep copy of the level so callers can mutate tiles freely.
func (l *Level) Clone() *Level {
	c := *l
	c.Tiles = make([][]Tile, len(l.Tiles))
	for y, row := range l.Tiles {
		c.Tiles[y] = append([]Tile(nil), row...)
	}
	c.Rooms = append([]Room(nil), l.Rooms...)
	return &c
}
