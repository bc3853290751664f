package flappy

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

var (
	configMu   sync.Mutex
	configPath string
)

// SetConfigPath sets the YAML file used by games created with New.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
}

// Game adapts World to the terminal platform: it turns screen cells into a
// world viewport, records the run for replay and draws the world.
type Game struct {
	cfg     config.FlappyConfig
	rt      core.RuntimeConfig
	world   *World
	replay  Replay
	screenW int
	screenH int
}

// New creates a Flappy Bird game using the configured YAML file.
// An unreadable config falls back to the defaults; callers that need the
// error should load it with config.LoadFlappy and use NewWithConfig.
func New() *Game {
	configMu.Lock()
	path := configPath
	configMu.Unlock()

	cfg, err := config.LoadFlappy(path)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Flappy Bird game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset performs a full reset: a new world in the NotStarted phase and a
// new run id. It is the only way out of the Ended phase.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.world = NewWorld(g.cfg, NewRandSource(rt.Seed))
	cfg := g.cfg
	g.replay = Replay{
		RunID:    uuid.NewString(),
		Seed:     rt.Seed,
		TickRate: rt.TickRate,
		Width:    rt.ScreenW,
		Height:   rt.ScreenH,
		Config:   &cfg,
	}
}

// Step advances the game by one tick. Once the run has ended the world is
// frozen and further ticks are not recorded.
func (g *Game) Step(t core.Tick) core.StepResult {
	if g.world == nil {
		panic("flappy: Step called before Reset")
	}
	if g.world.State().Ended() {
		return core.StepResult{State: g.State()}
	}

	tick := g.world.Ticks()
	if t.ScreenW > 0 && t.ScreenH > 0 && (t.ScreenW != g.screenW || t.ScreenH != g.screenH) {
		g.screenW, g.screenH = t.ScreenW, t.ScreenH
		g.replay.Events = append(g.replay.Events, Event{Tick: tick, Kind: EventResize, Width: t.ScreenW, Height: t.ScreenH})
	}
	flap := t.Input.Has(core.ActionJump)
	if flap {
		g.replay.Events = append(g.replay.Events, Event{Tick: tick, Kind: EventFlap})
	}

	g.world.Step(Input{
		Dt:       t.Dt,
		Flap:     flap,
		Viewport: g.Viewport(),
	})

	return core.StepResult{State: g.State()}
}

// Viewport returns the world-unit viewport for the current screen size.
// The bottom row is reserved for the ground line.
func (g *Game) Viewport() core.Viewport {
	return core.Viewport{
		W: float64(g.screenW) * g.cfg.Display.UnitsPerCol,
		H: float64(max(g.screenH-1, 1)) * g.cfg.Display.UnitsPerRow,
	}
}

// World returns the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// RunID returns the id of the current run.
func (g *Game) RunID() string {
	return g.replay.RunID
}

// Replay returns the recording of the current run so far.
func (g *Game) Replay() Replay {
	r := g.replay
	r.Events = append([]Event(nil), g.replay.Events...)
	if g.replay.Config != nil {
		cfg := *g.replay.Config
		r.Config = &cfg
	}
	if g.world != nil {
		r.Ticks = g.world.Ticks()
	}
	r.CreatedAt = time.Now()
	return r
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.State()
	return core.GameState{
		Score:    g.world.DisplayScore(),
		Started:  s.Started(),
		GameOver: s.Ended(),
	}
}

// projection maps world coordinates to screen cells.
type projection struct {
	vp       core.Viewport
	upc, upr float64
}

func (p projection) col(x float64) int {
	return int(math.Floor((x + p.vp.HalfW()) / p.upc))
}

func (p projection) row(y float64) int {
	return int(math.Floor((p.vp.HalfH() - y) / p.upr))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	proj := projection{
		vp:  g.Viewport(),
		upc: g.cfg.Display.UnitsPerCol,
		upr: g.cfg.Display.UnitsPerRow,
	}

	insetX, insetY := g.world.HitboxInsets()
	for _, o := range g.world.Obstacles() {
		g.drawObstacle(dst, proj, o.Hitbox(insetX, insetY), o.Hanging(), groundY)
	}
	g.drawBody(dst, proj, groundY)

	// Draw HUD
	dst.DrawTextColored(1, 0, " Score: ", core.ColorOrange)
	dst.DrawTextColored(9, 0, fmt.Sprintf("%d ", g.world.DisplayScore()), core.ColorBrightYellow)

	switch g.world.State().Phase() {
	case PhaseNotStarted:
		// Kept clear of the body, which starts in the middle of the field.
		dst.DrawTextCentered(max(groundY-2, 1), "FLAPPY BIRD - press Space to flap")
	case PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", g.world.DisplayScore()))
	}
}

// drawObstacle fills the obstacle hitbox, capping the edge that faces the gap.
func (g *Game) drawObstacle(dst *core.Screen, p projection, box core.Box, hanging bool, groundY int) {
	lo, hi := box.Min(), box.Max()
	c0, c1 := p.col(lo.X), p.col(hi.X)
	r0, r1 := p.row(hi.Y), p.row(lo.Y)
	if r1 >= groundY {
		r1 = groundY - 1
	}

	for y := max(r0, 0); y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
	}

	capRow, capChar := r0, PipeCapBottom
	if hanging {
		capRow, capChar = r1, PipeCapTop
	}
	if capRow >= 0 && capRow < groundY {
		for x := c0; x <= c1; x++ {
			dst.SetColored(x, capRow, capChar, core.ColorBrightGreen)
		}
	}
}

// drawBody draws the body across the columns its circle covers.
func (g *Game) drawBody(dst *core.Screen, p projection, groundY int) {
	b := g.world.Body()
	r := b.Radius()
	y := core.Clamp(p.row(b.Pos.Y), 0, groundY-1)
	c0, c1 := p.col(b.Pos.X-r), p.col(b.Pos.X+r)

	color := core.ColorYellow
	if g.world.State().Ended() {
		color = core.ColorRed
	}
	for x := c0; x < c1; x++ {
		dst.SetColored(x, y, BodyChar, color)
	}
	dst.SetColored(c1, y, PlayerChar, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
