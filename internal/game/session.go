package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/entity"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/world"
)

// playSeedSalt separates the gameplay stream (enemy kinds, loot) from the generation stream.
const playSeedSalt = 0x5eed

// Session holds the state of one run: the current level, the player and
// everything picked up or opened so far. It has no terminal dependency.
type Session struct {
	RunID   string
	Depth   int
	Level   *world.Level // Owned by the session; collected coins are cleared in place
	Player  *entity.Player
	Enemies []*entity.Enemy
	Opened  mapset.Set[world.Point] // Chests already looted on this level
	State   State
	Message string

	cfg      Config
	preset   *gamedata.PresetDef
	enemies  *gamedata.EnemyRegistry
	loot     *gamedata.LootTable
	baseSeed int64
	rng      *rand.Rand
}

// NewSession resolves the configured preset and prepares a run.
// Call Start to generate the first level.
func NewSession(cfg Config, presets *gamedata.PresetRegistry, enemies *gamedata.EnemyRegistry, loot *gamedata.LootTable) (*Session, error) {
	preset, err := presets.Lookup(cfg.Preset)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Session{
		RunID:    uuid.NewString(),
		cfg:      cfg,
		preset:   preset,
		enemies:  enemies,
		loot:     loot,
		baseSeed: seed,
	}, nil
}

// Preset returns the preset levels are generated from.
func (s *Session) Preset() *gamedata.PresetDef {
	return s.preset
}

// LevelSeed returns the generation seed for the given depth.
func (s *Session) LevelSeed(depth int) int64 {
	return s.baseSeed + int64(depth-1)
}

// Start begins the run at depth 1 with a fresh player.
func (s *Session) Start(ctx context.Context) {
	s.Depth = 1
	s.Player = nil
	s.loadLevel(ctx)
}

// Restart is Start after a death or at the player's request.
func (s *Session) Restart(ctx context.Context) {
	s.Start(ctx)
}

// NextLevel descends once the exit has been reached. It does nothing in any other state.
func (s *Session) NextLevel(ctx context.Context) {
	if s.State != StateLevelComplete {
		return
	}
	s.Depth++
	s.loadLevel(ctx)
}

// loadLevel generates the level for the current depth and places the player on its spawn.
func (s *Session) loadLevel(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.load_level")
	defer span.End()

	seed := s.LevelSeed(s.Depth)

	gen := s.preset.Generator()
	if s.cfg.TileSize > 0 {
		gen.TileSize = s.cfg.TileSize
	}
	level := gen.Generate(ctx, rand.New(rand.NewSource(seed)), s.preset.Options())
	level.Seed = seed

	s.rng = rand.New(rand.NewSource(seed ^ playSeedSalt))
	s.Level = level
	s.Enemies = entity.SpawnEnemies(level, s.enemies, s.rng)
	s.Opened = mapset.New[world.Point]()
	s.State = StateExplore

	x, y := level.SpawnTile()
	if s.Player == nil {
		s.Player = entity.NewPlayer(x, y)
	} else {
		s.Player.MoveTo(x, y)
	}
	s.Message = fmt.Sprintf("Depth %d: %s", s.Depth, s.preset.Name)
	if len(level.Rooms) == 0 {
		s.Message = fmt.Sprintf("Depth %d: the %dx%d %s grid is too small for any room.",
			s.Depth, level.Width, level.Height, s.preset.Name)
		span.SetAttributes(attribute.Bool("level.empty", true))
	}

	span.SetAttributes(
		attribute.String("run.id", s.RunID),
		attribute.Int("session.depth", s.Depth),
		attribute.Int64("session.seed", seed),
		attribute.String("session.preset", s.preset.ID),
		attribute.Int("level.rooms", len(level.Rooms)),
		attribute.Int("level.enemies", len(s.Enemies)),
	)
}

// EnemyAt returns the enemy standing at the position, or nil.
func (s *Session) EnemyAt(x, y int) *entity.Enemy {
	for _, e := range s.Enemies {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// Slide moves the player in dir until the next tile is a wall or an enemy.
// Coins along the way are collected and chests are opened once each.
// Bumping an enemy costs its damage and ends the slide; so does reaching the exit.
// Directions other than a single orthogonal step are ignored.
// It returns the number of tiles moved.
func (s *Session) Slide(ctx context.Context, dir Direction) int {
	if s.State != StateExplore || !dir.Valid() {
		return 0
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.slide")
	defer span.End()

	exitX, exitY := s.Level.ExitTile()
	steps, coins := 0, 0
	s.Message = ""

	for {
		nx, ny := s.Player.X+dir.DX, s.Player.Y+dir.DY
		if !s.Level.IsWalkable(nx, ny) {
			break
		}

		if enemy := s.EnemyAt(nx, ny); enemy != nil {
			taken := s.Player.TakeDamage(enemy.Damage())
			s.Message = fmt.Sprintf("The %s hits you for %d!", enemy.Name(), taken)
			span.SetAttributes(attribute.String("slide.blocked_by", enemy.ID()))
			break
		}

		s.Player.MoveTo(nx, ny)
		steps++

		switch s.Level.TileAt(nx, ny) {
		case world.TileCoin:
			s.Player.CollectCoins(1)
			s.Level.Tiles[ny][nx] = world.TileFloor
			coins++
		case world.TileChest:
			s.openChest(nx, ny)
		}

		if nx == exitX && ny == exitY {
			s.State = StateLevelComplete
			s.Message = "Dungeon complete! Press n to descend."
			break
		}
	}

	if coins > 0 && s.Message == "" {
		s.Message = fmt.Sprintf("+%d coins", coins)
	}
	if !s.Player.IsAlive() {
		s.State = StateDead
		s.Message = "You died. Press r to restart."
	}

	span.SetAttributes(
		attribute.String("slide.direction", dir.String()),
		attribute.Int("slide.steps", steps),
		attribute.Int("slide.coins", coins),
		attribute.String("session.state", s.State.String()),
	)
	return steps
}

// openChest rolls loot for an unopened chest and applies it to the player.
func (s *Session) openChest(x, y int) {
	p := world.Point{X: x, Y: y}
	if s.Opened.Has(p) {
		return
	}
	s.Opened.Put(p)

	if s.loot == nil {
		return
	}
	drop := s.loot.Roll(s.rng)
	if drop.Def == nil {
		return
	}
	switch drop.Def.Kind {
	case gamedata.LootCoins:
		s.Player.CollectCoins(drop.Amount)
		s.Message = fmt.Sprintf("%s: +%d coins", drop.Def.Name, drop.Amount)
	case gamedata.LootHeal:
		healed := s.Player.Heal(drop.Amount)
		s.Message = fmt.Sprintf("%s: +%d health", drop.Def.Name, healed)
	}
}
