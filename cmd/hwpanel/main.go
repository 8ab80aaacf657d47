// hwpanel renders the metrics panel in the terminal, standing in for the
// SPI TFT display. It either simulates data (demo mode) or consumes CSV
// records from the serial link (serial mode).
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"hwpanel/internal/config"
	"hwpanel/internal/display"
	"hwpanel/internal/display/termcanvas"
	"hwpanel/internal/feed"
	"hwpanel/internal/models"
	"hwpanel/internal/sched"
	"hwpanel/internal/transport"
)

func main() {
	configPath := flag.String("config", "hwpanel.yaml", "path to the YAML config")
	mode := flag.String("mode", "", "demo or serial (overrides config)")
	serialPort := flag.String("serial", "", "serial port override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *serialPort != "" {
		cfg.Serial.Port = *serialPort
		cfg.Panel.Mode = config.ModeSerial
	}
	if *mode != "" {
		cfg.Panel.Mode = *mode
	}
	if cfg.Panel.Mode != config.ModeDemo && cfg.Panel.Mode != config.ModeSerial {
		log.Fatalf("unknown mode %q", cfg.Panel.Mode)
	}
	if cfg.Panel.Mode == config.ModeSerial && cfg.Serial.Port == "" {
		log.Fatalf("serial mode requires a serial port")
	}

	store := feed.NewStore(models.DefaultSnapshot())

	// Open the link before taking over the terminal so failures stay
	// readable.
	onData := demoSource(store)
	if cfg.Panel.Mode == config.ModeSerial {
		port, err := transport.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			log.Fatalf("[SERIAL] %v", err)
		}
		defer port.Close()
		onData = serialSource(store, port)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}
	defer screen.Fini()
	log.SetOutput(io.Discard) // the screen owns the terminal now

	canvas := termcanvas.New(screen)
	renderer := display.NewRenderer(canvas, time.Now())
	renderer.DrawHeader()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleEvents(screen, renderer, cancel)

	loop := sched.NewLoop(cfg.DataInterval(), cfg.DisplayInterval(),
		onData,
		func(now time.Time) { renderer.Render(store.Current(), now) },
	)
	loop.Run(ctx, 50*time.Millisecond)
}

// demoSource replaces the snapshot with the simulator's next step.
func demoSource(store *feed.Store) func(time.Time) {
	sim := feed.NewSimulator(time.Now().UnixNano())
	return func(now time.Time) {
		store.Replace(sim.Tick(now))
	}
}

// serialSource drains records queued by the reader goroutine. Malformed
// records leave the snapshot unchanged; the next good line supersedes.
func serialSource(store *feed.Store, port io.Reader) func(time.Time) {
	lines := make(chan string, 8)
	go func() {
		lr := transport.NewLineReader(port)
		for {
			line, err := lr.Next()
			if err != nil {
				// Link gone; keep rendering the last snapshot.
				return
			}
			select {
			case lines <- line:
			default:
				// Consumer is behind; drop the oldest pending line.
				select {
				case <-lines:
				default:
				}
				select {
				case lines <- line:
				default:
				}
			}
		}
	}()

	return func(now time.Time) {
		for {
			select {
			case line := <-lines:
				if snap, err := feed.ParseLine(line, now); err == nil {
					store.Replace(snap)
				}
			default:
				return
			}
		}
	}
}

func handleEvents(screen tcell.Screen, renderer *display.Renderer, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			// Drawing happens only on the scheduler goroutine; just flag
			// the header for repaint on the next render pass.
			renderer.RequestHeaderRedraw()
		case nil:
			return
		}
	}
}
