package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/delvegen/internal/world"
)

// DefaultPresetID names the preset that reproduces the classic 20x30 level.
const DefaultPresetID = "classic"

// ErrUnknownPreset is returned when a preset ID is not in the registry.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetDef defines a level size and generation options loaded from JSON.
type PresetDef struct {
	ID            string `json:"id"`            // Unique identifier (e.g., "classic")
	Name          string `json:"name"`          // Display name
	Width         int    `json:"width"`         // Grid width in tiles
	Height        int    `json:"height"`        // Grid height in tiles
	MinRoomSize   int    `json:"minRoomSize"`   // Inclusive lower bound on room sides
	MaxRoomSize   int    `json:"maxRoomSize"`   // Inclusive upper bound on room sides
	RoomCount     int    `json:"roomCount"`     // Target number of rooms
	CorridorWidth int    `json:"corridorWidth"` // Corridor width in tiles
}

// Options converts the preset into generator options.
func (p *PresetDef) Options() world.Options {
	return world.Options{
		MinRoomSize:   p.MinRoomSize,
		MaxRoomSize:   p.MaxRoomSize,
		RoomCount:     p.RoomCount,
		CorridorWidth: p.CorridorWidth,
	}
}

// Generator returns a generator sized for the preset.
func (p *PresetDef) Generator() *world.Generator {
	return world.NewGenerator(p.Width, p.Height)
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

func (f *PresetsFile) validate() error {
	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		if p.ID == "" {
			return errors.New("preset with empty id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate preset %q", p.ID)
		}
		seen[p.ID] = true
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("preset %q: size %dx%d must be positive", p.ID, p.Width, p.Height)
		}
		if p.MinRoomSize > p.MaxRoomSize {
			return fmt.Errorf("preset %q: minRoomSize %d exceeds maxRoomSize %d", p.ID, p.MinRoomSize, p.MaxRoomSize)
		}
	}
	return nil
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
