package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/delvegen/internal/entity"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/world"
)

// ExitRune marks the exit tile.
const ExitRune = '>'

// View is everything the renderer needs for one frame.
type View struct {
	Level   *world.Level
	Player  *entity.Player
	Enemies []*entity.Enemy
	Opened  mapset.Set[world.Point]
	Depth   int
	Message string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the visible part of the level, the entities on it and the HUD line.
// The map scrolls so the player stays on screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := height - 1 // Last row is the HUD
	if mapHeight < 1 || v.Level == nil {
		r.screen.Show()
		return
	}

	offX, offY := 0, 0
	if v.Player != nil {
		offX = scrollOffset(v.Player.X, width, v.Level.Width)
		offY = scrollOffset(v.Player.Y, mapHeight, v.Level.Height)
	}

	// Draw dungeon tiles
	for sy := 0; sy < mapHeight; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := sx+offX, sy+offY
			if !v.Level.InBounds(x, y) {
				continue
			}
			tile := v.Level.TileAt(x, y)
			style := r.palette.Style(tile)
			if tile == world.TileChest && v.Opened.Has(world.Point{X: x, Y: y}) {
				style = style.Dim(true)
			}
			ch := tile.Rune()
			if tile == world.TileEnemy {
				// The enemy entity draws itself below
				ch = world.TileFloor.Rune()
				style = r.palette.Style(world.TileFloor)
			}
			r.screen.SetContent(sx, sy, ch, style)
		}
	}

	exitX, exitY := v.Level.ExitTile()
	r.drawAt(exitX-offX, exitY-offY, width, mapHeight, ExitRune,
		tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))

	for _, e := range v.Enemies {
		r.drawAt(e.X-offX, e.Y-offY, width, mapHeight, e.Symbol(),
			tcell.StyleDefault.Foreground(e.Color()))
	}

	// Draw player on top
	if v.Player != nil {
		r.drawAt(v.Player.X-offX, v.Player.Y-offY, width, mapHeight, v.Player.Symbol,
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}

	r.RenderMessage(hudLine(v), height-1)
	r.screen.Show()
}

func (r *Renderer) drawAt(sx, sy, width, height int, ch rune, style tcell.Style) {
	if sx < 0 || sx >= width || sy < 0 || sy >= height {
		return
	}
	r.screen.SetContent(sx, sy, ch, style)
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

func hudLine(v View) string {
	line := fmt.Sprintf("Depth %d", v.Depth)
	if v.Player != nil {
		line += fmt.Sprintf("  HP %d/%d  Coins %d", v.Player.Health, v.Player.MaxHealth, v.Player.Coins)
	}
	if v.Message != "" {
		line += "  " + v.Message
	}
	return line
}

// scrollOffset returns the first visible map coordinate so that pos is
// centred in a window of size view, clamped to [0, total-view].
func scrollOffset(pos, view, total int) int {
	if total <= view {
		return 0
	}
	off := pos - view/2
	if off < 0 {
		return 0
	}
	if off > total-view {
		return total - view
	}
	return off
}
