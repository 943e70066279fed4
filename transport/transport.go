// Package transport implements the hardware side of neopixel.Transmitter.
// The real output path NRZ-encodes the buffer over a SPI port; when no port
// is available a console preview stands in so rendering code keeps working
// on a development machine.
package transport

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"

	"github.com/ledkit/neopixel"
)

// DefaultFreq is the symbol rate for WS2812-class strips: 800kHz refresh,
// three SPI bits per wire bit, plus headroom.
const DefaultFreq = 2500 * physic.KiloHertz

// SPI transmits buffers through an NRZ-encoding SPI port. The port is bound
// at construction; the pin passed to Transmit is only used for reporting.
type SPI struct {
	port spi.PortCloser
	dev  *nrzled.Dev
}

// NewSPI opens the named SPI port (a spireg name, e.g. "SPI0.0" or "" for
// the first available) and prepares it for numPixels pixels of channels
// color channels each.
func NewSPI(pin neopixel.Pin, numPixels, channels int) (*SPI, error) {
	port, err := spireg.Open(string(pin))
	if err != nil {
		return nil, fmt.Errorf("open SPI port %q: %w", pin, err)
	}
	t, err := NewSPIPort(port, numPixels, channels)
	if err != nil {
		port.Close()
		return nil, err
	}
	return t, nil
}

// NewSPIPort is NewSPI over an already-open port. Tests hand it a playback
// port.
func NewSPIPort(port spi.PortCloser, numPixels, channels int) (*SPI, error) {
	opts := nrzled.Opts{
		NumPixels: numPixels,
		Channels:  channels,
		Freq:      DefaultFreq,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("init NRZ LED device: %w", err)
	}
	return &SPI{port: port, dev: dev}, nil
}

// ConfigureOutput halts the device, which drives the line to its idle
// state.
func (t *SPI) ConfigureOutput(pin neopixel.Pin) {
	if err := t.dev.Halt(); err != nil {
		log.Warn().Err(err).Str("pin", string(pin)).Msg("could not idle output")
	}
}

// Transmit pushes the full channel buffer to the strip. It blocks until the
// port has accepted the encoded stream.
func (t *SPI) Transmit(buf []byte, pin neopixel.Pin) error {
	if _, err := t.dev.Write(buf); err != nil {
		return fmt.Errorf("transmit %d bytes on %q: %w", len(buf), pin, err)
	}
	return nil
}

// Close releases the SPI port.
func (t *SPI) Close() error {
	return t.port.Close()
}

// Screen renders buffers as a row of ANSI-colored cells in the terminal.
type Screen struct {
	dev *screen.Dev
}

// NewScreen returns a console preview for numPixels pixels.
func NewScreen(numPixels int) *Screen {
	return &Screen{dev: screen.New(numPixels)}
}

func (t *Screen) ConfigureOutput(pin neopixel.Pin) {}

func (t *Screen) Transmit(buf []byte, pin neopixel.Pin) error {
	if _, err := t.dev.Write(buf); err != nil {
		return fmt.Errorf("preview write: %w", err)
	}
	return nil
}

func (t *Screen) Close() error {
	return t.dev.Halt()
}

// Open returns a SPI transmitter for the pin, falling back to the console
// preview when no SPI port can be opened.
func Open(pin neopixel.Pin, numPixels, channels int) neopixel.Transmitter {
	t, err := NewSPI(pin, numPixels, channels)
	if err != nil {
		log.Warn().Err(err).Str("pin", string(pin)).Msg("no SPI port, previewing at the console")
		return NewScreen(numPixels)
	}
	return t
}
