package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/telemetry"
)

const (
	// Default dungeon dimensions, in tiles
	DefaultWidth  = 20
	DefaultHeight = 30

	// DefaultTileSize is the number of world pixels per tile.
	DefaultTileSize = 50

	// Generation defaults
	DefaultMinRoomSize   = 5
	DefaultMaxRoomSize   = 9
	DefaultRoomCount     = 8
	DefaultCorridorWidth = 3

	attemptsPerRoom = 10
)

// Feature counts, inclusive.
const (
	minCoinsPerRoom   = 2
	maxCoinsPerRoom   = 5
	minEnemiesPerRoom = 0
	maxEnemiesPerRoom = 2
	minChests         = 1
	maxChests         = 3
)

// Options controls a generation run. Zero fields take the package defaults.
type Options struct {
	MinRoomSize   int `json:"minRoomSize"`
	MaxRoomSize   int `json:"maxRoomSize"`
	RoomCount     int `json:"roomCount"`
	CorridorWidth int `json:"corridorWidth"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MinRoomSize:   DefaultMinRoomSize,
		MaxRoomSize:   DefaultMaxRoomSize,
		RoomCount:     DefaultRoomCount,
		CorridorWidth: DefaultCorridorWidth,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinRoomSize <= 0 {
		o.MinRoomSize = d.MinRoomSize
	}
	if o.MaxRoomSize <= 0 {
		o.MaxRoomSize = d.MaxRoomSize
	}
	if o.MaxRoomSize < o.MinRoomSize {
		o.MaxRoomSize = o.MinRoomSize
	}
	if o.RoomCount <= 0 {
		o.RoomCount = d.RoomCount
	}
	if o.CorridorWidth <= 0 {
		o.CorridorWidth = d.CorridorWidth
	}
	return o
}

// Generator produces dungeon levels of a fixed size.
// It holds no state between calls; every Generate call builds a fresh level.
//
// Grids too small to fit a room of MinRoomSize are valid input: every
// placement attempt fails and the level comes back with zero rooms.
type Generator struct {
	Width    int
	Height   int
	TileSize int
}

// NewGenerator creates a generator for width x height tile grids.
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:    width,
		Height:   height,
		TileSize: DefaultTileSize,
	}
}

// Generate creates a level: rooms, corridors between consecutive rooms,
// features, and the spawn and exit points.
//
// All randomness is drawn from rng, so the same seed yields the same level.
// A nil rng uses a time-seeded source.
func (g *Generator) Generate(ctx context.Context, rng *rand.Rand, opts Options) *Level {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	opts = opts.withDefaults()

	b := &builder{
		width:  g.Width,
		height: g.Height,
		rng:    rng,
		opts:   opts,
	}

	b.initGrid()
	b.placeRooms()
	b.connectRooms()
	b.placeFeatures()

	level := &Level{
		Width:    g.Width,
		Height:   g.Height,
		TileSize: g.TileSize,
		Tiles:    b.tiles,
		Rooms:    b.rooms,
		Spawn:    g.spawnPoint(b.rooms),
		Exit:     g.exitPoint(b.rooms),
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", g.Width),
		attribute.Int("dungeon.height", g.Height),
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int("dungeon.rooms_requested", opts.RoomCount),
		attribute.Int("dungeon.placement_attempts", b.attempts),
		attribute.Int("dungeon.corridors", b.corridors),
		attribute.Int("dungeon.coins", b.coins),
		attribute.Int("dungeon.enemies", b.enemies),
		attribute.Int("dungeon.chests", b.chests),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	if len(b.rooms) == 0 {
		span.SetAttributes(attribute.String("warning", "no rooms generated, using fallback spawn and exit"))
	}

	return level
}

// spawnPoint returns the world position of the first room's center.
func (g *Generator) spawnPoint(rooms []Room) Point {
	if len(rooms) == 0 {
		return g.toWorld(1, 1)
	}
	return g.toWorld(rooms[0].Center())
}

// exitPoint returns the world position of the last room's center.
func (g *Generator) exitPoint(rooms []Room) Point {
	if len(rooms) == 0 {
		return g.toWorld(g.Width-2, g.Height-2)
	}
	return g.toWorld(rooms[len(rooms)-1].Center())
}

func (g *Generator) toWorld(x, y int) Point {
	return Point{X: x * g.TileSize, Y: y * g.TileSize}
}

// builder holds the mutable state of one generation run.
type builder struct {
	width, height int
	rng           *rand.Rand
	opts          Options

	tiles [][]Tile
	rooms []Room

	attempts  int
	corridors int
	coins     int
	enemies   int
	chests    int
}

// between returns a uniform integer in [lo, hi].
func (b *builder) between(lo, hi int) int {
	return lo + b.rng.Intn(hi-lo+1)
}

// initGrid fills the grid with walls.
func (b *builder) initGrid() {
	b.tiles = make([][]Tile, b.height)
	for y := range b.tiles {
		b.tiles[y] = make([]Tile, b.width)
		for x := range b.tiles[y] {
			b.tiles[y][x] = TileWall
		}
	}
	b.rooms = make([]Room, 0, b.opts.RoomCount)
}

// placeRooms samples rooms until RoomCount are placed or the attempt budget runs out.
func (b *builder) placeRooms() {
	maxAttempts := b.opts.RoomCount * attemptsPerRoom
	maxX := b.width - b.opts.MaxRoomSize - 1
	maxY := b.height - b.opts.MaxRoomSize - 1

	for len(b.rooms) < b.opts.RoomCount && b.attempts < maxAttempts {
		b.attempts++

		// Grid cannot hold a room of MaxRoomSize with a wall border
		if maxX < 1 || maxY < 1 {
			continue
		}

		room := Room{
			X:      b.between(1, maxX),
			Y:      b.between(1, maxY),
			Width:  b.between(b.opts.MinRoomSize, b.opts.MaxRoomSize),
			Height: b.between(b.opts.MinRoomSize, b.opts.MaxRoomSize),
		}

		if b.overlapsAny(room) {
			continue
		}
		b.rooms = append(b.rooms, room)
		b.carveRoom(room)
	}
}

func (b *builder) overlapsAny(room Room) bool {
	for _, other := range b.rooms {
		if room.Overlaps(other, RoomPadding) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (b *builder) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			b.carve(x, y)
		}
	}
}

// carve promotes a wall to floor. Floor and features are left alone.
func (b *builder) carve(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if b.tiles[y][x] == TileWall {
		b.tiles[y][x] = TileFloor
	}
}
