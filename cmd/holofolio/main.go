// Command holofolio renders an animated portfolio hero section in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/holofolio/clock"
	"github.com/lixenwraith/holofolio/config"
)

var (
	configPath = flag.String("config", "", "Path to a YAML file overlaid on the default scene")
	fpsFlag    = flag.Int("fps", 0, "Frames per second, overrides the config")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/holofolio.log")
	headless   = flag.Bool("headless", false, "Render into an in-memory screen and exit")
	frameCount = flag.Int("frames", 90, "Frames to render with -headless")
)

// activeScreen is finalised by the crash handler so the terminal is usable afterwards
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		handleCrash(recover())
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configPath, *fpsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "holofolio: %v\n", err)
		os.Exit(1)
	}

	if *headless {
		if err := runHeadless(cfg, *frameCount, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "holofolio: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	activeScreen = screen
	// Normal exit terminal cleanup
	defer screen.Fini()

	a, err := newApp(cfg, screen, options{muted: *muteFlag, sched: clock.NewReal()})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "holofolio: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("holofolio started", "fps", cfg.FPS, "shapes", len(cfg.Shapes), "particles", cfg.Particles.Count)
	if err := a.run(ctx); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "holofolio: %v\n", err)
		os.Exit(1)
	}
	slog.Info("holofolio stopped")
}

// loadConfig loads the config file and applies flag overrides
func loadConfig(path string, fps int) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if fps != 0 {
		cfg.FPS = fps
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// epoch anchors the headless virtual clock so runs are reproducible
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// runHeadless renders frames into a simulation screen and prints the last one
func runHeadless(cfg *config.Config, frames int, out io.Writer) error {
	if frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", frames)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("simulation screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 32)

	mock := clock.NewMock(epoch)
	a, err := newApp(cfg, screen, options{muted: true, sched: mock})
	if err != nil {
		return err
	}
	if err := a.runHeadless(mock, frames); err != nil {
		return err
	}

	if out != nil {
		fmt.Fprintln(out, screenText(screen))
	}
	return nil
}

// screenText dumps the screen contents row by row
func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	buf := make([]rune, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, width := screen.GetContent(x, y)
			if width == 0 {
				continue
			}
			buf = append(buf, r)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
