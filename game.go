package main

import (
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs/render"
	"github.com/milk9111/squashbox/input/keyboard"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/prefabs"
	"github.com/milk9111/squashbox/sim"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg      *config.Config
	session  *sim.Session
	keys     *keyboard.Keyboard
	renderer *render.RenderSystem
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI

	paused      bool
	quit        bool
	clipboardOK bool
}

func NewGame(cfg *config.Config, lvl *levels.Level, tuning *config.Tuning) (*Game, error) {
	keys := keyboard.New()
	session, err := sim.NewSession(lvl, tuning, keys, cfg.Debug)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		session:  session,
		keys:     keys,
		renderer: render.NewRenderSystem(colornames.Midnightblue),
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(cfg.Paths.Prefabs, cfg.Paths.Levels)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: disabled: %v", err)
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.restart()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.keys.Refresh()
	g.session.Step()
	return nil
}

// applyReloads runs between ticks. tuning.yaml is applied in place; any
// other data file respawns the current level from disk.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("watch: %v", err)
		}
	default:
	}

	respawn := false
	for _, path := range g.watcher.Poll() {
		if filepath.Base(path) == config.TuningFile {
			if err := config.ReloadTuning(g.session.Tuning()); err != nil {
				log.Printf("watch: keeping previous tuning: %v", err)
				continue
			}
			log.Printf("watch: reloaded %s", path)
			continue
		}
		respawn = true
	}
	if !respawn {
		return
	}

	lvl, err := levels.Load(g.cfg.Level)
	if err != nil {
		log.Printf("watch: keeping current level: %v", err)
		return
	}
	if err := g.session.Reset(lvl); err != nil {
		log.Printf("watch: keeping current level: %v", err)
		return
	}
	log.Printf("watch: respawned level %s", lvl.Name)
}

func (g *Game) restart() {
	if err := g.session.Reset(nil); err != nil {
		log.Printf("restart: %v", err)
	}
	g.paused = false
}

func (g *Game) copySnapshot() {
	data, err := g.session.Snapshot().YAML()
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("snapshot:\n%s", data)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("snapshot: copied tick %d to clipboard", g.session.World().Tick())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.session.World(), screen)
	if g.cfg.Debug {
		render.DrawDebug(g.session.World(), screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
