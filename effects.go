package neopixel

import (
	"github.com/ledkit/neopixel/pixel"
)

// ShowRainbow paints a hue gradient from startHue to endHue (degrees,
// walked clockwise around the color wheel) across the view and flushes.
// Saturation is fixed at 100, luminosity at 50. The interpolation runs in
// ×100 fixed point so the same strip renders identically everywhere: the
// first pixel gets exactly hsl(startHue), the last exactly hsl(endHue).
func (s *Strip) ShowRainbow(startHue, endHue int) error {
	if s.length <= 0 {
		return nil
	}
	const saturation = 100
	const luminance = 50
	steps := s.length

	hDist := ((endHue-startHue)%360 + 360) % 360 // clockwise
	hStep := hDist * 100 / steps
	h100 := startHue * 100

	if steps == 1 {
		// Historical single-pixel behavior: one step past the start hue,
		// with the step still in ×100 units.
		s.SetPixelColor(0, pixel.HSL(startHue+hStep, saturation, luminance))
		return s.Show()
	}
	s.SetPixelColor(0, pixel.HSL(startHue, saturation, luminance))
	for i := 1; i < steps-1; i++ {
		h := (h100+i*hStep)/100 + 360
		s.SetPixelColor(i, pixel.HSL(h, saturation, luminance))
	}
	s.SetPixelColor(steps-1, pixel.HSL(endHue, saturation, luminance))
	return s.Show()
}

// ShowBarGraph lights the first value*length/high pixels with a blue-to-red
// ramp keyed by position and clears the rest, then flushes. A non-positive
// high is signalled by clearing the strip and lighting pixel 0 yellow; a
// zero bar keeps pixel 0 on a dim amber so the display never looks dead.
func (s *Strip) ShowBarGraph(value, high int) error {
	if high <= 0 {
		s.Clear()
		s.SetPixelColor(0, pixel.Yellow)
		return s.Show()
	}
	if value < 0 {
		value = -value
	}
	n := s.length
	n1 := n - 1
	v := value * n / high
	if v == 0 {
		s.SetPixelColor(0, 0x666600)
		for i := 1; i < n; i++ {
			s.SetPixelColor(i, 0)
		}
		return s.Show()
	}
	for i := 0; i < n; i++ {
		if i <= v {
			b := 0
			if n1 > 0 {
				b = i * 255 / n1
			}
			s.SetPixelColor(i, pixel.RGB(b, 0, 255-b))
		} else {
			s.SetPixelColor(i, 0)
		}
	}
	return s.Show()
}

// EaseBrightness re-derates the channel values already stored in the view
// with a parabolic window: dark at the edges, full at the midpoint. Unlike
// SetBrightness this rewrites the buffer in place. It does not flush.
func (s *Strip) EaseBrightness() {
	mid := s.length / 2
	if mid <= 0 {
		return
	}
	stride := s.mode.Stride()
	buf := s.buf.Bytes()
	for k := 0; k < s.length; k++ {
		mul := 0
		if k > mid {
			d := s.length - 1 - k
			mul = 255 * d * d / (mid * mid)
		} else {
			mul = 255 * k * k / (mid * mid)
		}
		off := (s.start + k) * stride
		for j := 0; j < stride; j++ {
			buf[off+j] = byte(int(buf[off+j]) * mul >> 8)
		}
	}
}
