package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/world"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// TileStyleDef defines how one tile kind is drawn.
type TileStyleDef struct {
	Kind  world.Tile `json:"kind"`
	Color string     `json:"color"`
	Bold  bool       `json:"bold"`
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

func (f *TilesFile) validate() error {
	for _, t := range f.Tiles {
		if _, err := ParseHexColor(t.Color); err != nil {
			return fmt.Errorf("tile %v: %w", t.Kind, err)
		}
	}
	return nil
}

// Palette maps tile kinds to terminal styles.
type Palette struct {
	styles map[world.Tile]tcell.Style
}

// LoadPalette builds a palette from the embedded tiles.json file.
func LoadPalette() (*Palette, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}

	p := &Palette{styles: make(map[world.Tile]tcell.Style, len(file.Tiles))}
	for _, def := range file.Tiles {
		p.styles[def.Kind] = tcell.StyleDefault.
			Foreground(MustParseHexColor(def.Color)).
			Bold(def.Bold)
	}
	return p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Style returns the style for a tile kind, or the default style if the kind has none.
func (p *Palette) Style(tile world.Tile) tcell.Style {
	if style, ok := p.styles[tile]; ok {
		return style
	}
	return tcell.StyleDefault
}
