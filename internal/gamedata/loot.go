package gamedata

import "fmt"

// LootKind says what a chest reward does to the player.
type LootKind string

const (
	LootCoins LootKind = "coins"
	LootHeal  LootKind = "heal"
)

// LootDef defines one chest reward loaded from JSON.
type LootDef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Kind   LootKind `json:"kind"`
	Min    int      `json:"min"`    // Inclusive lower bound of the amount
	Max    int      `json:"max"`    // Inclusive upper bound of the amount
	Weight int      `json:"weight"` // Relative drop frequency
}

// Drop is the outcome of opening a chest.
type Drop struct {
	Def    *LootDef
	Amount int
}

// LootFile represents the structure of loot.json.
type LootFile struct {
	Loot []LootDef `json:"loot"`
}

func (f *LootFile) validate() error {
	for _, l := range f.Loot {
		switch l.Kind {
		case LootCoins, LootHeal:
		default:
			return fmt.Errorf("loot %q: unknown kind %q", l.ID, l.Kind)
		}
		if l.Min > l.Max {
			return fmt.Errorf("loot %q: min %d exceeds max %d", l.ID, l.Min, l.Max)
		}
	}
	return nil
}

// LoadLoot loads loot definitions from the embedded loot.json file.
func LoadLoot() ([]LootDef, error) {
	file, err := Load[LootFile]("loot.json")
	if err != nil {
		return nil, err
	}
	return file.Loot, nil
}
