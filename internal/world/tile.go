// Package world provides dungeon generation and map management.
package world

import (
	"errors"
	"fmt"
)

// ErrUnknownTile is returned when a tile name does not match any tile kind.
var ErrUnknownTile = errors.New("unknown tile kind")

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileCoin is floor carrying a coin.
	TileCoin Tile = '$'
	// TileEnemy is floor occupied by an enemy.
	TileEnemy Tile = 'e'
	// TileChest is floor holding a chest.
	TileChest Tile = '='
)

// Tiles lists every tile kind in declaration order.
var Tiles = []Tile{TileWall, TileFloor, TileCoin, TileEnemy, TileChest}

// IsWalkable returns true for every tile except walls.
// Features sit on top of floor, so they are walkable too.
func (t Tile) IsWalkable() bool {
	switch t {
	case TileFloor, TileCoin, TileEnemy, TileChest:
		return true
	default:
		return false
	}
}

// IsFeature returns true if the tile is floor with an overlay entity.
func (t Tile) IsFeature() bool {
	return t == TileCoin || t == TileEnemy || t == TileChest
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns the tile kind name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileCoin:
		return "coin"
	case TileEnemy:
		return "enemy"
	case TileChest:
		return "chest"
	default:
		return "unknown"
	}
}

// ParseTile returns the tile kind with the given name.
func ParseTile(name string) (Tile, error) {
	for _, t := range Tiles {
		if t.String() == name {
			return t, nil
		}
	}
	return TileWall, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// MarshalText encodes the tile as its kind name.
func (t Tile) MarshalText() ([]byte, error) {
	if t.String() == "unknown" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTile, rune(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tile kind name.
func (t *Tile) UnmarshalText(text []byte) error {
	parsed, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
