package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Pixel-Hunt/internal/assets"
	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/game"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

func main() {
	var configPath string
	var seed int64

	flag.StringVar(&configPath, "config", "", "YAML config file (defaults apply when empty)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	targetSheet, explosionSheet := assets.Sheets(cfg)
	var sound sim.Sound = sim.NopSound{}
	if cfg.Audio.Enabled {
		sound = assets.ExplosionSound(audio.NewContext(assets.SampleRate), cfg.Audio, cfg.Assets.ExplosionSound)
	}

	g, err := game.New(cfg, sim.Assets{
		TargetSheet:    targetSheet,
		ExplosionSheet: explosionSheet,
		ExplosionSound: sound,
	}, rand.New(rand.NewSource(seed))) // #nosec G404 -- gameplay randomness
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Pixel Hunt")
	ebiten.SetWindowSize(cfg.CanvasWidth, cfg.CanvasHeight)
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
