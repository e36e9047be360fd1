package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/world"
)

// defaultDamage applies to enemies without a definition.
const defaultDamage = 10

// Enemy represents a hostile creature standing on an enemy tile.
type Enemy struct {
	Def       *gamedata.EnemyDef // Reference to the enemy definition (nil for untyped enemies)
	X, Y      int                // Position in the dungeon
	RoomIndex int                // Index of the room this enemy is in (-1 if not in a room)
}

// NewEnemy creates an enemy from a data-driven definition.
func NewEnemy(def *gamedata.EnemyDef, x, y, roomIndex int) *Enemy {
	return &Enemy{
		Def:       def,
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
	}
}

// SpawnEnemies creates one enemy per enemy tile in the level, in row-major order,
// drawing each kind from the registry.
func SpawnEnemies(level *world.Level, registry *gamedata.EnemyRegistry, rng *rand.Rand) []*Enemy {
	var enemies []*Enemy
	for y, row := range level.Tiles {
		for x, tile := range row {
			if tile != world.TileEnemy {
				continue
			}
			var def *gamedata.EnemyDef
			if registry != nil {
				def = registry.SpawnRandom(rng)
			}
			enemies = append(enemies, NewEnemy(def, x, y, level.RoomIndexAt(x, y)))
		}
	}
	return enemies
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Name returns the display name.
func (e *Enemy) Name() string {
	if e.Def != nil {
		return e.Def.Name
	}
	return "Monster"
}

// Symbol returns the display rune.
func (e *Enemy) Symbol() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	return world.TileEnemy.Rune()
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorRed
}

// Damage returns how much health the enemy takes on contact.
func (e *Enemy) Damage() int {
	if e.Def != nil && e.Def.Damage > 0 {
		return e.Def.Damage
	}
	return defaultDamage
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return "monster"
}
