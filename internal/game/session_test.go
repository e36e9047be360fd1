package game

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/delvegen/internal/entity"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/ui"
	"github.com/samdwyer/delvegen/internal/world"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	s, err := NewSession(cfg,
		gamedata.MustLoadPresetRegistry(),
		gamedata.MustLoadEnemyRegistry(),
		gamedata.MustLoadLootTable(),
	)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// useLayout replaces the session level with a hand-drawn one.
// '@' marks the player, '>' the exit; both sit on floor.
func useLayout(t *testing.T, s *Session, rows ...string) {
	t.Helper()
	level := &world.Level{Width: len(rows[0]), Height: len(rows), TileSize: 1}
	s.Player = nil
	for y, row := range rows {
		line := make([]world.Tile, 0, len(row))
		for x, ch := range row {
			switch ch {
			case '@':
				s.Player = entity.NewPlayer(x, y)
				ch = '.'
			case '>':
				level.Exit = world.Point{X: x, Y: y}
				ch = '.'
			}
			line = append(line, world.Tile(ch))
		}
		level.Tiles = append(level.Tiles, line)
	}
	if s.Player == nil {
		t.Fatal("layout has no player")
	}
	if level.Exit == (world.Point{}) {
		level.Exit = world.Point{X: -1, Y: -1}
	}

	s.Level = level
	s.Enemies = entity.SpawnEnemies(level, nil, nil)
	s.Opened = mapset.New[world.Point]()
	s.State = StateExplore
	s.rng = rand.New(rand.NewSource(1))
}

func TestNewSessionUnknownPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "missing"
	_, err := NewSession(cfg, gamedata.MustLoadPresetRegistry(), nil, nil)
	if !errors.Is(err, gamedata.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t, 42)
	s.Start(context.Background())

	if s.Depth != 1 || s.State != StateExplore {
		t.Errorf("after Start: depth %d state %v", s.Depth, s.State)
	}
	if s.Level.Seed != 42 {
		t.Errorf("level seed %d, want 42", s.Level.Seed)
	}
	if x, y := s.Level.SpawnTile(); s.Player.X != x || s.Player.Y != y {
		t.Errorf("player at (%d,%d), spawn at (%d,%d)", s.Player.X, s.Player.Y, x, y)
	}
	if len(s.Enemies) != s.Level.Count(world.TileEnemy) {
		t.Errorf("%d enemies for %d enemy tiles", len(s.Enemies), s.Level.Count(world.TileEnemy))
	}
	if s.RunID == "" {
		t.Error("expected a run id")
	}

	other := newTestSession(t, 42)
	other.Start(context.Background())
	if s.Level.String() != other.Level.String() {
		t.Error("sessions with the same seed should generate the same first level")
	}
}

func TestLevelSeed(t *testing.T) {
	s := newTestSession(t, 100)
	if s.LevelSeed(1) != 100 || s.LevelSeed(3) != 102 {
		t.Errorf("LevelSeed(1)=%d LevelSeed(3)=%d", s.LevelSeed(1), s.LevelSeed(3))
	}

	random := newTestSession(t, 0)
	if random.LevelSeed(1) == 0 {
		t.Error("seed 0 should be replaced by a random seed")
	}
}

func TestSlideStopsAtWall(t *testing.T) {
	s := newTestSession(t, 1)
	useLayout(t, s,
		"#####",
		"#@..#",
		"#####",
	)
	ctx := context.Background()

	if steps := s.Slide(ctx, DirUp); steps != 0 {
		t.Errorf("slid %d tiles into a wall", steps)
	}
	if steps := s.Slide(ctx, DirRight); steps != 2 {
		t.Errorf("slid %d tiles, want 2", steps)
	}
	if s.Player.X != 3 {
		t.Errorf("player at x=%d, want 3", s.Player.X)
	}
}

func TestSlideIgnoresInvalidDirections(t *testing.T) {
	s := newTestSession(t, 1)
	useLayout(t, s,
		"######",
		"#@.#.#",
		"######",
	)
	ctx := context.Background()

	tests := []struct {
		name string
		dir  Direction
	}{
		{"zero", Direction{}},
		{"double step", Direction{DX: 2}},
		{"diagonal", Direction{DX: 1, DY: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan int, 1)
			go func() { done <- s.Slide(ctx, tt.dir) }()

			select {
			case steps := <-done:
				if steps != 0 {
					t.Errorf("slid %d tiles", steps)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Slide did not return")
			}
			if s.Player.X != 1 || s.Player.Y != 1 {
				t.Errorf("player moved to (%d,%d)", s.Player.X, s.Player.Y)
			}
		})
	}

	if !DirRight.Valid() || (Direction{}).Valid() {
		t.Error("unexpected Direction.Valid results")
	}
}

func TestStartWithRoomlessPreset(t *testing.T) {
	s := newTestSession(t, 3)
	s.preset = &gamedata.PresetDef{ID: "closet", Name: "Closet", Width: 3, Height: 3}
	s.Start(context.Background())

	if len(s.Level.Rooms) != 0 {
		t.Fatalf("expected no rooms, got %d", len(s.Level.Rooms))
	}
	if s.Player.X != 1 || s.Player.Y != 1 {
		t.Errorf("player at (%d,%d), want fallback (1,1)", s.Player.X, s.Player.Y)
	}
	if !strings.Contains(s.Message, "too small") {
		t.Errorf("message %q does not report the empty level", s.Message)
	}
}

func TestSlideCollectsCoins(t *testing.T) {
	s := newTestSession(t, 1)
	useLayout(t, s,
		"#######",
		"#@.$.$#",
		"#######",
	)

	s.Slide(context.Background(), DirRight)

	if s.Player.Coins != 2 {
		t.Errorf("collected %d coins, want 2", s.Player.Coins)
	}
	if s.Level.Count(world.TileCoin) != 0 {
		t.Error("collected coins should be cleared from the level")
	}
	if s.Message != "+2 coins" {
		t.Errorf("message %q", s.Message)
	}
}

func TestSlideBlockedByEnemy(t *testing.T) {
	s := newTestSession(t, 1)
	useLayout(t, s,
		"#######",
		"#@..e.#",
		"#######",
	)

	s.Slide(context.Background(), DirRight)

	if s.Player.X != 3 {
		t.Errorf("player at x=%d, want 3 (next to the enemy)", s.Player.X)
	}
	if s.Player.Health != entity.DefaultMaxHealth-10 {
		t.Errorf("health %d, want %d", s.Player.Health, entity.DefaultMaxHealth-10)
	}
	if s.State != StateExplore {
		t.Errorf("state %v, want explore", s.State)
	}
}

func TestSlideDeath(t *testing.T) {
	s := newTestSession(t, 1)
	useLayout(t, s,
		"#####",
		"#@e.#",
		"#####",
	)
	s.Player.Health = 5
	ctx := context.Background()

	s.Slide(ctx, DirRight)
	if s.State != StateDead {
		t.Fatalf("state %v, want dead", s.State)
	}
	if steps := s.Slide(ctx, DirLeft); steps != 0 {
		t.Error("dead players should not move")
	}

	s.Restart(ctx)
	if s.State != StateExplore || s.Depth != 1 || s.Player.Health != entity.DefaultMaxHealth {
		t.Errorf("after restart: state %v depth %d health %d", s.State, s.Depth, s.Player.Health)
	}
}

func TestChestOpensOnce(t *testing.T) {
	s := newTestSession(t, 1)
	s.loot = gamedata.NewLootTable([]gamedata.LootDef{
		{ID: "pouch", Name: "Pouch", Kind: gamedata.LootCoins, Min: 7, Max: 7, Weight: 1},
	})
	useLayout(t, s,
		"######",
		"#@.=.#",
		"######",
	)
	ctx := context.Background()

	s.Slide(ctx, DirRight)
	if s.Player.Coins != 7 {
		t.Fatalf("coins %d after first pass, want 7", s.Player.Coins)
	}
	if !s.Opened.Has(world.Point{X: 3, Y: 1}) {
		t.Error("chest not marked opened")
	}

	s.Slide(ctx, DirLeft)
	s.Slide(ctx, DirRight)
	if s.Player.Coins != 7 {
		t.Errorf("coins %d after second pass, chest looted twice", s.Player.Coins)
	}
}

func TestChestHeals(t *testing.T) {
	s := newTestSession(t, 1)
	s.loot = gamedata.NewLootTable([]gamedata.LootDef{
		{ID: "potion", Name: "Potion", Kind: gamedata.LootHeal, Min: 25, Max: 25, Weight: 1},
	})
	useLayout(t, s,
		"#####",
		"#@=.#",
		"#####",
	)
	s.Player.Health = 50

	s.Slide(context.Background(), DirRight)
	if s.Player.Health != 75 {
		t.Errorf("health %d, want 75", s.Player.Health)
	}
}

func TestReachExitAndDescend(t *testing.T) {
	s := newTestSession(t, 9)
	useLayout(t, s,
		"#######",
		"#@.$>.#",
		"#######",
	)
	ctx := context.Background()

	s.Slide(ctx, DirRight)
	if s.State != StateLevelComplete {
		t.Fatalf("state %v, want level_complete", s.State)
	}
	if s.Player.X != 4 {
		t.Errorf("slide should stop on the exit, player at x=%d", s.Player.X)
	}
	if steps := s.Slide(ctx, DirRight); steps != 0 {
		t.Error("no sliding after the level is complete")
	}

	s.Depth = 1
	s.NextLevel(ctx)
	if s.Depth != 2 || s.State != StateExplore {
		t.Errorf("after NextLevel: depth %d state %v", s.Depth, s.State)
	}
	if s.Level.Seed != s.LevelSeed(2) {
		t.Errorf("level seed %d, want %d", s.Level.Seed, s.LevelSeed(2))
	}
	if s.Player.Coins != 1 {
		t.Errorf("coins should carry over, got %d", s.Player.Coins)
	}

	// NextLevel outside the complete state is ignored
	s.NextLevel(ctx)
	if s.Depth != 2 {
		t.Errorf("depth advanced to %d without reaching the exit", s.Depth)
	}
}

func TestGameKeys(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.WrapScreen(sim)
	if err != nil {
		t.Fatalf("WrapScreen failed: %v", err)
	}
	defer screen.Close()

	s := newTestSession(t, 1)
	g := newGame(screen, s)
	useLayout(t, s,
		"#####",
		"#@..#",
		"#####",
	)
	ctx := context.Background()

	g.handleKeyEvent(ctx, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if s.Player.X != 3 {
		t.Errorf("right arrow left player at x=%d", s.Player.X)
	}
	g.handleKeyEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	if s.Player.X != 1 {
		t.Errorf("'h' left player at x=%d", s.Player.X)
	}

	g.render()

	g.handleKeyEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if g.running {
		t.Error("'q' should stop the game")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateLevelComplete, "level_complete"},
		{StateDead, "dead"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}

	if DirLeft.String() != "left" || (Direction{}).String() != "none" {
		t.Error("unexpected direction names")
	}
}
