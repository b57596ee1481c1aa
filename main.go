package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/prefabs"
)

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, toml or json)")
	levelName := flag.String("level", "", "level name in levels/ (.yaml optional, .tengo for scripted levels)")
	debug := flag.Bool("debug", false, "enable debug overlay and invariant checks")
	watch := flag.Bool("watch", false, "hot reload tuning, prefabs and levels from disk")
	ticks := flag.Int("ticks", 0, "run N ticks without a window and print the final state")
	script := flag.String("input", "", "scripted input for -ticks, e.g. R*20,RJ,.*5")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *levelName
		case "debug":
			cfg.Debug = *debug
		case "watch":
			cfg.Watch = *watch
		}
	})
	prefabs.Dir = cfg.Paths.Prefabs
	levels.Dir = cfg.Paths.Levels

	tuning, err := config.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		log.Fatal(err)
	}

	if *ticks > 0 {
		if err := runHeadless(os.Stdout, lvl, tuning, *script, *ticks, cfg.Debug); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, lvl, tuning)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
