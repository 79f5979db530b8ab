package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/terminal"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ui := flag.String("ui", "ebiten", "Presentation: ebiten (window) or terminal")
	seed := flag.Int64("seed", 0, "Food placement seed (0 = time based)")
	buffered := flag.Bool("buffered", false, "Apply key presses on the next tick instead of moving immediately")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else if *ui == "terminal" {
		// Anything written to the tty would tear the screen.
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := domain.DefaultGameConfig()
	if *buffered {
		cfg.InputMode = domain.InputBuffered
	}

	application, err := app.NewApp(cfg, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	log.Printf("Seed %d, ui %s", *seed, *ui)

	switch *ui {
	case "ebiten":
		return runWindow(application)
	case "terminal":
		return runTerminal(application)
	default:
		return fmt.Errorf("unknown ui %q", *ui)
	}
}

func runWindow(application *app.App) error {
	engine := graphics.NewEngine(application)
	engine.RegisterScreen(screens.NewGameScreen(engine, application.Config().CellSize))

	if err := engine.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func runTerminal(application *app.App) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := terminal.New(screen, application).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("terminal: %w", err)
	}
	log.Println("Shutting down...")
	return nil
}
