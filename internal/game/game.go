package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/ui"
)

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	session, err := NewSession(cfg,
		gamedata.MustLoadPresetRegistry(),
		gamedata.MustLoadEnemyRegistry(),
		gamedata.MustLoadLootTable(),
	)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(screen, session), nil
}

func newGame(screen *ui.Screen, session *Session) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, gamedata.MustLoadPalette()),
		session:  session,
		running:  true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.session.Start(ctx)
	initSpan.End()

	for g.running {
		g.render()

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.View{
		Level:   s.Level,
		Player:  s.Player,
		Enemies: s.Enemies,
		Opened:  s.Opened,
		Depth:   s.Depth,
		Message: s.Message,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.Slide(ctx, DirUp)
	case tcell.KeyDown:
		g.session.Slide(ctx, DirDown)
	case tcell.KeyLeft:
		g.session.Slide(ctx, DirLeft)
	case tcell.KeyRight:
		g.session.Slide(ctx, DirRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.session.Slide(ctx, DirUp)
		case 'j':
			g.session.Slide(ctx, DirDown)
		case 'h':
			g.session.Slide(ctx, DirLeft)
		case 'l':
			g.session.Slide(ctx, DirRight)
		case 'n', 'N':
			g.session.NextLevel(ctx)
		case 'r', 'R':
			g.session.Restart(ctx)
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
