package main

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/content"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/input"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/parallax"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/scene"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/schedule"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/spatial"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/tiles"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/transition"
)

// Game is the portfolio: four pages, one transition at a time.
type Game struct {
	cfg config.Config

	// now is the game clock in ms. It advances one tick per Update so timers
	// and animation share a single source.
	now   float64
	sched *schedule.Scheduler

	machine  *transition.Machine
	state    transition.State
	router   *input.Router
	animator *spatial.Animator

	overlayStart float64

	reveals  map[page.Page]*scene.Reveal
	presence map[page.Page]float64 // 0 hidden, 1 fully shown
	ready    map[page.Page]float64 // scene reveal fade
	sparkles map[page.Page][]scene.Sparkle
	orbits   *scene.Orbits

	viewport *parallax.Viewport
	sw, sh   int // screen size from the last Layout

	tileSrc  image.Image
	tileName string
	tiles    *tiles.Cache
	bgImages map[bgKey]*ebiten.Image
	layers   map[page.Page]*ebiten.Image
	portal   *ebiten.Image
	shade    *ebiten.Image

	fonts *fonts
	ptr   pointer
}

type bgKey struct {
	page    page.Page
	density int
	w, h    int
}

// NewGame wires the transition core to the game loop.
func NewGame(cfg config.Config) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		sched:    schedule.New(0),
		animator: spatial.NewAnimator(cfg.ReducedMotion),
		reveals:  make(map[page.Page]*scene.Reveal),
		presence: make(map[page.Page]float64),
		ready:    make(map[page.Page]float64),
		sparkles: make(map[page.Page][]scene.Sparkle),
		orbits:   scene.NewOrbits(cfg.Timings.OrbitTick),
		tiles:    tiles.NewCache(nil),
		bgImages: make(map[bgKey]*ebiten.Image),
		layers:   make(map[page.Page]*ebiten.Image),
		fonts:    f,
		sw:       cfg.Window.Width,
		sh:       cfg.Window.Height,
	}

	g.machine = transition.NewMachine(cfg.Timings, g.sched)
	g.state = g.machine.State()
	g.machine.Subscribe(g.onState)
	g.router = input.NewRouter(cfg.Timings, g, func(p page.Page) { g.machine.Request(p) })

	for _, p := range page.All() {
		g.reveals[p] = scene.NewReveal(g.sched, cfg.Timings, revealOptions(p))
		g.sparkles[p] = scene.Sparkles(p)
	}
	g.presence[g.state.Current] = 1

	g.viewport = parallax.NewViewport(g.sched, cfg.Timings.ResizeDebounce, cfg.Window.Width, cfg.Window.Height, g.onResize)
	g.tileSrc, g.tileName = tiles.Source(cfg.TileImage)

	return g, nil
}

func revealOptions(p page.Page) scene.RevealOptions {
	switch p {
	case page.Passions:
		return scene.RevealOptions{Pins: len(content.Passions), Immediate: true}
	case page.Projects:
		return scene.RevealOptions{Pins: len(content.Projects), Stagger: true}
	}
	return scene.RevealOptions{}
}

// CurrentPage implements input.StateReader.
func (g *Game) CurrentPage() page.Page { return g.state.Current }

// InFlight implements input.StateReader.
func (g *Game) InFlight() bool { return g.state.Transitioning }

func (g *Game) onState(s transition.State) {
	prev := g.state
	g.state = s

	g.animator.Follow(prev, s, g.cfg.Depth)
	if s.Seq != prev.Seq && s.Transitioning {
		log.Printf("transition: %s -> %s (%s)", s.From, s.To, s.Direction)
		if s.Cinematic {
			g.overlayStart = g.now
		}
		g.ptr.selected = ""
	}
	if prev.Transitioning && !s.Transitioning && s.Current != page.Stack {
		g.orbits.Reset()
	}
}

func (g *Game) onResize(w, h int) {
	log.Printf("viewport: %dx%d", w, h)
	g.tiles.Invalidate()
	for k, img := range g.bgImages {
		img.Deallocate()
		delete(g.bgImages, k)
	}
}

func (g *Game) Update() error {
	dt := 1000 / float64(ebiten.TPS())
	g.now += dt
	g.sched.Advance(g.now)

	g.handleInput()
	g.animator.Tick(g.now)

	for _, p := range page.All() {
		props := transition.PropsFor(g.state, p)
		r := g.reveals[p]
		r.Update(props)

		target := 0.0
		if props.Active && !props.Transitioning {
			target = 1
		}
		g.presence[p] = g.approach(g.presence[p], target, dt, g.cfg.Timings.StandardDuration)
		// The destination fades in with the spatial motion, ahead of its
		// own reveal.
		if g.animator.Running() && p == g.animator.Descriptor().To {
			g.presence[p] = max(g.presence[p], g.animator.Runtime().Progress)
		}

		ready := 0.0
		if r.Ready() {
			ready = 1
		}
		g.ready[p] = g.approach(g.ready[p], ready, dt, 1000)
	}

	if g.state.Current == page.Stack {
		g.orbits.Advance(dt)
	}
	return nil
}

// Draw renders one frame: background, pages, the cinematic overlay, then the
// navigation chrome on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawBackground(screen)
	g.drawPages(screen)
	g.drawPortal(screen)
	g.drawNav(screen)
}

// approach moves v towards target so that a full swing takes spanMs. With
// reduced motion it jumps.
func (g *Game) approach(v, target, dt, spanMs float64) float64 {
	if g.cfg.ReducedMotion || spanMs <= 0 {
		return target
	}
	step := dt / spanMs
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sw, g.sh = outsideWidth, outsideHeight
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops every pending timer.
func (g *Game) Close() {
	g.machine.Close()
	g.viewport.Stop()
	for _, r := range g.reveals {
		r.Stop()
	}
}
