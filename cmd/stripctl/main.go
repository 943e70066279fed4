// stripctl drives an addressable LED strip through a demo pattern. Without
// SPI hardware it previews the strip in the terminal.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/ledkit/neopixel"
	"github.com/ledkit/neopixel/internal/config"
	"github.com/ledkit/neopixel/pixel"
	"github.com/ledkit/neopixel/transport"
)

func main() {
	var (
		pixels     = flag.Int("pixels", 30, "number of pixels on the strip")
		mode       = flag.String("mode", "GRB", "channel order: GRB, RGB or RGBW")
		pin        = flag.String("pin", "", "SPI port name (empty = first available)")
		brightness = flag.Int("brightness", neopixel.DefaultBrightness, "write-time brightness 0-255")
		fps        = flag.Int("fps", 30, "frames per second")
		demo       = flag.String("demo", "rainbow", "demo: rainbow | bargraph | ease")
		configPath = flag.String("config", "", "optional path to a config.yaml")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		} else {
			if cfg.Pixels > 0 {
				*pixels = cfg.Pixels
			}
			if cfg.Mode != "" {
				*mode = cfg.Mode
			}
			if cfg.Pin != "" {
				*pin = cfg.Pin
			}
			if cfg.Brightness > 0 {
				*brightness = cfg.Brightness
			}
			if cfg.FPS > 0 {
				*fps = cfg.FPS
			}
			if cfg.Demo != "" {
				*demo = cfg.Demo
			}
		}
	}

	m, ok := pixel.Modes[*mode]
	if !ok {
		log.Warn().Str("mode", *mode).Msg("unknown mode; using GRB")
		m = pixel.ModeGRB
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init failed")
	}

	tx := transport.Open(neopixel.Pin(*pin), *pixels, m.Stride())
	strip := neopixel.New(tx, neopixel.Pin(*pin), *pixels, m)
	strip.SetBrightness(*brightness)

	log.Info().
		Int("pixels", *pixels).
		Str("mode", m.String()).
		Str("demo", *demo).
		Msg("strip ready")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	frame := 0
loop:
	for {
		select {
		case s := <-ch:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			break loop
		case <-ticker.C:
			if err := renderFrame(strip, *demo, frame); err != nil {
				log.Warn().Err(err).Msg("frame dropped")
			}
			frame++
		}
	}

	strip.Clear()
	if err := strip.Show(); err != nil {
		log.Warn().Err(err).Msg("final clear failed")
	}
	if c, ok := tx.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

func renderFrame(strip *neopixel.Strip, demo string, frame int) error {
	switch demo {
	case "bargraph":
		// Sweep the bar up and back down.
		period := 2 * strip.Length()
		if period == 0 {
			return nil
		}
		v := frame % period
		if v >= strip.Length() {
			v = period - 1 - v
		}
		return strip.ShowBarGraph(v, strip.Length())
	case "ease":
		if frame == 0 {
			if err := strip.ShowColor(pixel.Purple); err != nil {
				return err
			}
			strip.EaseBrightness()
		} else {
			strip.Rotate(1)
		}
		return strip.Show()
	default: // rainbow
		if frame == 0 {
			return strip.ShowRainbow(1, 360)
		}
		strip.Rotate(1)
		return strip.Show()
	}
}
