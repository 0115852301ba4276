package main

import (
	"log"
	"os"

	"sketchpad/internal/config"
	"sketchpad/internal/state"
	"sketchpad/internal/ui"
)

const defaultConfigPath = "sketchpad.toml"

func main() {
	path := defaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	doc := state.NewDocument()
	session := state.NewSession(doc)
	session.SetColor(cfg.StrokeColor())
	session.SetWidth(cfg.Stroke.Width)
	session.SetFitOptions(cfg.FitOptions())

	log.Printf("Starting sketchpad (pen %s, width %.1f)", cfg.Stroke.Color, cfg.Stroke.Width)
	ui.RunApp(cfg, session)
}
