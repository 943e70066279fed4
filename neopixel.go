// Package neopixel maintains a logical pixel buffer for addressable LED
// strips (WS2812, SK6812 and friends) and the color math that renders into
// it. A Strip is a view over shared channel storage; nothing reaches the
// wire until Show or one of the Show* helpers hands the buffer to the
// strip's Transmitter.
package neopixel

import (
	"github.com/ledkit/neopixel/pixel"
)

// Re-exported so callers only need this package for common use.
type Mode = pixel.Mode

const (
	ModeGRB  = pixel.ModeGRB
	ModeRGBW = pixel.ModeRGBW
	ModeRGB  = pixel.ModeRGB
)

// DefaultBrightness is applied to freshly created strips.
const DefaultBrightness = 128

// Pin identifies a hardware output, e.g. a SPI port registry name. The core
// treats it as opaque and passes it straight through to the Transmitter.
type Pin string

// Transmitter is the hardware boundary. Implementations serialize the
// already-channel-ordered buffer into the wire-level timing protocol.
type Transmitter interface {
	// ConfigureOutput puts the pin into a known idle state. Called once
	// whenever a strip's pin is (re)assigned. Failures are the
	// transmitter's to report; the strip does not consume them.
	ConfigureOutput(pin Pin)
	// Transmit blocks until the full buffer has been pushed out.
	Transmit(buf []byte, pin Pin) error
}

// Strip is a view over a shared pixel.Buffer. Ranges derived with Range
// alias the same buffer; brightness is per view.
type Strip struct {
	buf         *pixel.Buffer
	tx          Transmitter
	pin         Pin
	brightness  int
	start       int
	length      int
	mode        Mode
	matrixWidth int
}

// New allocates a strip with a fresh buffer sized for numPixels and
// configures the output pin.
func New(tx Transmitter, pin Pin, numPixels int, mode Mode) *Strip {
	if numPixels < 0 {
		numPixels = 0
	}
	s := &Strip{
		buf:        pixel.NewBuffer(numPixels, mode.Stride()),
		tx:         tx,
		pin:        pin,
		brightness: DefaultBrightness,
		length:     numPixels,
		mode:       mode,
	}
	if tx != nil {
		tx.ConfigureOutput(pin)
	}
	return s
}

// Buffer returns the shared channel store backing this view.
func (s *Strip) Buffer() *pixel.Buffer {
	return s.buf
}

// Length returns the number of pixels in this view.
func (s *Strip) Length() int {
	return s.length
}

// Mode returns the channel layout of the underlying buffer.
func (s *Strip) Mode() Mode {
	return s.mode
}

// Brightness returns the write-time brightness, 0-255.
func (s *Strip) Brightness() int {
	return s.brightness
}

// SetBrightness sets the multiplier applied to subsequent color writes.
// Values already in the buffer are not rescaled.
func (s *Strip) SetBrightness(b int) {
	s.brightness = b & 0xFF
}

// SetPin reassigns the hardware output and configures it.
func (s *Strip) SetPin(pin Pin) {
	s.pin = pin
	if s.tx != nil {
		s.tx.ConfigureOutput(pin)
	}
}

// SetPixelColor writes a packed color to pixel i of this view. Out-of-range
// indices are ignored. Brightness below 255 scales each channel by
// (channel*brightness)>>8 before the write.
func (s *Strip) SetPixelColor(i int, rgb uint32) {
	if i < 0 || i >= s.length {
		return
	}
	r := pixel.UnpackR(rgb)
	g := pixel.UnpackG(rgb)
	b := pixel.UnpackB(rgb)
	if s.brightness < 255 {
		r = r * s.brightness >> 8
		g = g * s.brightness >> 8
		b = b * s.brightness >> 8
	}
	s.setBufferRGB(s.buf.Offset(i+s.start), r, g, b)
}

// SetPixelWhiteLED writes the white channel of pixel i. It does nothing on
// strips without a white channel.
func (s *Strip) SetPixelWhiteLED(i int, white int) {
	if s.mode != ModeRGBW {
		return
	}
	if i < 0 || i >= s.length {
		return
	}
	if s.brightness < 255 {
		white = white * s.brightness >> 8
	}
	s.buf.Bytes()[s.buf.Offset(i+s.start)+3] = byte(white)
}

// SetMatrixWidth declares the view to be a row-major matrix with the given
// number of columns. Zero (or anything non-positive) turns matrix
// addressing off again.
func (s *Strip) SetMatrixWidth(width int) {
	if width < 0 {
		width = 0
	}
	if width > s.length {
		width = s.length
	}
	s.matrixWidth = width
}

// SetMatrixColor writes a packed color at column x, row y. The pixel index
// is x + y*matrixWidth; rows beyond length/matrixWidth and out-of-range
// coordinates are ignored, as is the call when no matrix width is set.
func (s *Strip) SetMatrixColor(x, y int, rgb uint32) {
	if s.matrixWidth <= 0 {
		return
	}
	rows := s.length / s.matrixWidth
	if x < 0 || x >= s.matrixWidth || y < 0 || y >= rows {
		return
	}
	s.SetPixelColor(x+y*s.matrixWidth, rgb)
}

// ShowColor sets every pixel of the view to rgb and flushes.
func (s *Strip) ShowColor(rgb uint32) error {
	for i := 0; i < s.length; i++ {
		s.SetPixelColor(i, rgb)
	}
	return s.Show()
}

// Clear zeroes the view's bytes. It does not flush.
func (s *Strip) Clear() {
	s.buf.FillPixels(0, s.start, s.length)
}

// Show pushes the buffer to the hardware.
func (s *Strip) Show() error {
	if s.tx == nil {
		return nil
	}
	return s.tx.Transmit(s.buf.Bytes(), s.pin)
}

// Range returns a sub-view of length pixels starting at start, clamped to
// this view's bounds. The sub-view aliases the same buffer, pin and
// transmitter; brightness is copied, so adjusting it on one view leaves the
// other alone.
func (s *Strip) Range(start, length int) *Strip {
	maxStart := s.length - 1
	if maxStart < 0 {
		maxStart = 0
	}
	rel := clamp(0, maxStart, start)
	return &Strip{
		buf:        s.buf,
		tx:         s.tx,
		pin:        s.pin,
		brightness: s.brightness,
		start:      s.start + rel,
		length:     clamp(0, s.length-rel, length),
		mode:       s.mode,
	}
}

// Shift moves the view's pixel data by offset positions toward higher
// indices (negative offsets move it the other way). Vacated pixels go dark;
// data shifted past the edge is dropped.
func (s *Strip) Shift(offset int) {
	s.buf.ShiftPixels(offset, s.start, s.length)
}

// Rotate is Shift with wrap-around.
func (s *Strip) Rotate(offset int) {
	s.buf.RotatePixels(offset, s.start, s.length)
}

// Power estimates the strip's current draw in mA: half a unit of idle draw
// per pixel plus a fixed factor of the lit channel values. It is a rough
// approximation, not a measurement.
func (s *Strip) Power() int {
	stride := s.mode.Stride()
	buf := s.buf.Bytes()
	end := (s.start + s.length) * stride
	p := 0
	for i := s.start * stride; i < end; i++ {
		p += int(buf[i])
	}
	return s.length/2 + p*433/10000
}

func (s *Strip) setBufferRGB(offset, r, g, b int) {
	buf := s.buf.Bytes()
	if s.mode == ModeRGB {
		buf[offset+0] = byte(r)
		buf[offset+1] = byte(g)
	} else {
		buf[offset+0] = byte(g)
		buf[offset+1] = byte(r)
	}
	buf[offset+2] = byte(b)
}

func clamp(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
