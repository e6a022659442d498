package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	settings, err := loadSettings(*configFlag)
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}

	g, err := newGame(settings)
	if err != nil {
		log.Fatalf("initializing: %v", err)
	}
	defer g.Close()

	if *recordDefaultPGO {
		stop, err := startCPUProfile("default.pgo")
		if err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		defer stop()
		time.AfterFunc(pgoRecordDuration, stop)
	}

	loop := settings.Audio.Loop
	if *loopFlag != "" {
		loop = *loopFlag
	}
	if loop != "" {
		if err := startAudioLoop(loop, settings.Audio.Volume, *muteFlag, g.loudness); err != nil {
			log.Printf("audio loop disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(settings.Screen.Width*settings.Screen.Scale, settings.Screen.Height*settings.Screen.Scale)
	ebiten.SetWindowTitle("Ripple Pond")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
