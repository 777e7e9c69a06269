//go:build ebiten

package app

import (
	"image/color"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const cameraTPS = 30

var backgroundColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}

// Game adapts a life.Simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Simulation
	painter *render.GridPainter
	panel   *ui.Panel
	overlay *ui.Overlay

	camera   Camera
	fitted   bool
	simClock *core.FixedStep
	camClock *core.FixedStep
	wheel    float64

	screenW, screenH int
	hover            int
	hovering         bool
	seed             int64
}

// New constructs a Game for the provided simulation.
func New(sim *life.Simulation, cfg *Config) *Game {
	size := sim.Life().Size()
	return &Game{
		sim:      sim,
		camera:   FitCamera(sim.Life().Mapper(), cfg.WindowWidth, cfg.WindowHeight),
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		panel:    ui.NewPanel(),
		overlay:  ui.NewOverlay(),
		simClock: core.NewFixedStep(cfg.Rate),
		camClock: core.NewFixedStep(cameraTPS),
		screenW:  cfg.WindowWidth,
		screenH:  cfg.WindowHeight,
		seed:     cfg.Seed,
	}
}

// Update handles per-frame logic. Control signals are delivered first, then
// pointer edits are queued, then the simulation ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if btn, ok := g.panel.Update(mx, my, left, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)); ok {
		switch btn {
		case ui.ButtonStart:
			g.sim.Signal(core.SignalStart)
		case ui.ButtonStop:
			g.sim.Signal(core.SignalStop)
		case ui.ButtonExit:
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.seed)
	}

	g.updateCamera()

	g.hovering = false
	if !g.panel.Captures(mx, my) {
		pos := g.camera.ScreenToWorld(float64(mx), float64(my), g.screenW, g.screenH)
		g.hover, g.hovering = g.sim.Life().Mapper().WorldToCell(pos)
		if left {
			g.sim.QueueEdit(life.PointerEdit{Pos: pos, Kind: life.Draw})
		}
		if right {
			g.sim.QueueEdit(life.PointerEdit{Pos: pos, Kind: life.Erase})
		}
	}

	g.sim.Tick(g.simClock.ShouldStep())
	return nil
}

func (g *Game) updateCamera() {
	_, wy := ebiten.Wheel()
	g.wheel += wy
	for g.camClock.ShouldStep() {
		var dir core.Vec2
		if ebiten.IsKeyPressed(ebiten.KeyW) {
			dir.Y--
		}
		if ebiten.IsKeyPressed(ebiten.KeyS) {
			dir.Y++
		}
		if ebiten.IsKeyPressed(ebiten.KeyA) {
			dir.X--
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) {
			dir.X++
		}
		g.camera.Pan(dir, ebiten.IsKeyPressed(ebiten.KeySpace))
		g.camera.Zoom(g.wheel, g.camClock.Step().Seconds())
		g.wheel = 0
	}
}

// Draw renders the grid, the hovered cell and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	l := g.sim.Life()
	view := g.view()
	g.painter.Blit(screen, l.Cells(), l.Mapper().CellSize, view)
	if g.hovering && g.sim.Mode() == core.Paused {
		lo, hi := l.Mapper().CellBounds(g.hover)
		g.overlay.Draw(screen, lo, hi, view)
	}
	g.panel.Draw(screen, g.sim.Mode(), l)
}

// view returns the world to screen transform for the current camera.
func (g *Game) view() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-g.camera.Pos.X, -g.camera.Pos.Y)
	m.Scale(1/g.camera.Scale, 1/g.camera.Scale)
	m.Translate(float64(g.screenW)/2, float64(g.screenH)/2)
	return m
}

// Layout tracks the window size; the first call fits the grid on screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	if !g.fitted {
		g.camera = FitCamera(g.sim.Life().Mapper(), outsideWidth, outsideHeight)
		g.fitted = true
	}
	return outsideWidth, outsideHeight
}
