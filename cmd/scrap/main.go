// Command scrap opens a window and embeds a browsing/rendering engine in
// it, forwarding mouse, scroll, and keyboard input. The first argument is
// the URL to open; without one the configured homepage is used.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/scrap/audio"
	"github.com/lixenwraith/scrap/config"
	"github.com/lixenwraith/scrap/engine"
	"github.com/lixenwraith/scrap/shell"
	"github.com/lixenwraith/scrap/window"

	// Engines register themselves via init()
	_ "github.com/lixenwraith/scrap/textview"
)

var (
	engineFlag = flag.String("engine", "", "engine to embed (overrides config)")
	muteFlag   = flag.Bool("mute", false, "disable the audible bell")
	logFlag    = flag.String("log", "", "write shell diagnostics to this file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrap: %v\n", err)
		os.Exit(1)
	}

	name := cfg.Engine.Name
	if *engineFlag != "" {
		name = *engineFlag
	}
	eng, err := engine.New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrap: %v\n", err)
		os.Exit(1)
	}

	homepage := cfg.Engine.Homepage
	if flag.NArg() > 0 {
		homepage = flag.Arg(0)
	}

	logger := slog.New(slog.DiscardHandler)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scrap: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	win, err := window.Create(window.Config{Title: "scrap", Mouse: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrap: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack so
	// the trace is readable.
	defer func() {
		if r := recover(); r != nil {
			win.Close()
			fmt.Fprintf(os.Stderr, "scrap crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio is best-effort; the shell runs silent when the speaker is
	// unavailable.
	var bell *audio.Bell
	if cfg.Audio.Enabled && !*muteFlag {
		bell = audio.NewBell()
		if err := bell.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
			bell = nil
		} else {
			defer bell.Close()
		}
	}

	sh := shell.New(win, eng, shell.Options{
		Homepage:   homepage,
		ScrollStep: cfg.Input.ScrollStep,
		Bell:       bell,
		Logger:     logger,
	})

	if err := sh.Run(); err != nil {
		win.Close()
		fmt.Fprintf(os.Stderr, "scrap: %v\n", err)
		os.Exit(1)
	}
}
