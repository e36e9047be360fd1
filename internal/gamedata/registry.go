package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// PresetRegistry
// =============================================================================

// PresetRegistry holds loaded presets keyed by ID.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Lookup is GetByID with an error for unknown IDs.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if p := r.presets[id]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// LootTable
// =============================================================================

// LootTable rolls chest rewards by weight.
type LootTable struct {
	loot        []LootDef
	totalWeight int
}

// NewLootTable creates a table from loaded loot definitions.
func NewLootTable(loot []LootDef) *LootTable {
	totalWeight := 0
	for _, l := range loot {
		totalWeight += l.Weight
	}
	return &LootTable{loot: loot, totalWeight: totalWeight}
}

// LoadLootTable loads and creates a table from the embedded loot.json.
func LoadLootTable() (*LootTable, error) {
	loot, err := LoadLoot()
	if err != nil {
		return nil, err
	}
	if len(loot) == 0 {
		return nil, errors.New("no loot loaded from loot.json")
	}
	return NewLootTable(loot), nil
}

// MustLoadLootTable loads a table, panicking on error.
func MustLoadLootTable() *LootTable {
	table, err := LoadLootTable()
	if err != nil {
		panic(err)
	}
	return table
}

// Roll picks a reward by weight, then an amount uniformly in [Min, Max].
// An empty table yields a zero Drop.
func (t *LootTable) Roll(rng *rand.Rand) Drop {
	if t.totalWeight <= 0 || len(t.loot) == 0 {
		return Drop{}
	}

	roll := rng.Intn(t.totalWeight)
	def := &t.loot[0]
	cumulative := 0
	for i := range t.loot {
		cumulative += t.loot[i].Weight
		if roll < cumulative {
			def = &t.loot[i]
			break
		}
	}

	return Drop{Def: def, Amount: def.Min + rng.Intn(def.Max-def.Min+1)}
}

// Count returns the number of rewards in the table.
func (t *LootTable) Count() int {
	return len(t.loot)
}
