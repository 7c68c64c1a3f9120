// Command tanktty runs the aquarium in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/tty"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logPath := flag.String("log", "", "File for JSON logs (empty = discard; the terminal is the screen)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	sound := flag.Bool("sound", false, "Play a plop when a fish enters")
	stats := flag.Bool("stats", false, "Show the status line and log window stats")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if *sound {
		if err := tty.InitSpeaker(); err != nil {
			// Non-fatal, the tank runs silently
			slog.Warn("audio initialization failed", "error", err)
			*sound = false
		} else {
			defer tty.CloseSpeaker()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := tty.NewApp(screen, cfg, tty.Options{
		Seed:      rngSeed,
		Sound:     *sound,
		ShowStats: *stats,
	})
	slog.Info("starting terminal aquarium", "seed", rngSeed)
	app.Run(ctx)
}
