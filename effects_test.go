package neopixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledkit/neopixel"
	"github.com/ledkit/neopixel/pixel"
)

func packedAt(s *neopixel.Strip, i int) uint32 {
	r, g, b := rgbAt(s, i)
	return pixel.RGB(r, g, b)
}

func TestShowRainbowEndpoints(t *testing.T) {
	for _, n := range []int{2, 3, 10, 47} {
		s, tx := newTestStrip(n, neopixel.ModeGRB)
		assert.NoError(t, s.ShowRainbow(1, 360))
		assert.Equal(t, 1, tx.frames, "rainbow flushes")

		assert.Equal(t, pixel.HSL(1, 100, 50), packedAt(s, 0),
			"n=%d: first pixel is exactly the start hue", n)
		assert.Equal(t, pixel.HSL(360, 100, 50), packedAt(s, n-1),
			"n=%d: last pixel is exactly the end hue", n)
	}
}

func TestShowRainbowSteps(t *testing.T) {
	// 10 pixels over 1..360: clockwise distance 359, hStep 3590 in ×100
	// units. Interior pixel i carries hue (100 + i*3590)/100 + 360.
	s, _ := newTestStrip(10, neopixel.ModeGRB)
	assert.NoError(t, s.ShowRainbow(1, 360))
	for i := 1; i < 9; i++ {
		want := pixel.HSL((100+i*3590)/100+360, 100, 50)
		assert.Equal(t, want, packedAt(s, i), "pixel %d", i)
	}
}

func TestShowRainbowSinglePixel(t *testing.T) {
	// One step past the start hue, step still in ×100 units.
	s, _ := newTestStrip(1, neopixel.ModeGRB)
	assert.NoError(t, s.ShowRainbow(1, 360))
	assert.Equal(t, pixel.HSL(1+35900, 100, 50), packedAt(s, 0))
}

func TestShowRainbowEmptyStrip(t *testing.T) {
	s, tx := newTestStrip(0, neopixel.ModeGRB)
	assert.NoError(t, s.ShowRainbow(1, 360))
	assert.Equal(t, 0, tx.frames, "nothing to show, nothing flushed")
}

func TestShowRainbowWrapsHues(t *testing.T) {
	// 350 -> 30 crosses 0 clockwise: distance 40.
	s, _ := newTestStrip(5, neopixel.ModeGRB)
	assert.NoError(t, s.ShowRainbow(350, 30))
	assert.Equal(t, pixel.HSL(350, 100, 50), packedAt(s, 0))
	assert.Equal(t, pixel.HSL(30, 100, 50), packedAt(s, 4))
}

func TestShowBarGraphInvalidScale(t *testing.T) {
	s, tx := newTestStrip(4, neopixel.ModeGRB)
	assert.NoError(t, s.ShowBarGraph(0, 0))
	assert.Equal(t, 1, tx.frames)
	assert.Equal(t, pixel.Yellow, packedAt(s, 0), "invalid scale lights pixel 0 yellow")
	for i := 1; i < 4; i++ {
		assert.Equal(t, uint32(0), packedAt(s, i))
	}
}

func TestShowBarGraphZeroValue(t *testing.T) {
	s, _ := newTestStrip(4, neopixel.ModeGRB)
	assert.NoError(t, s.ShowBarGraph(0, 100))
	assert.Equal(t, uint32(0x666600), packedAt(s, 0), "dim amber keeps the display alive")
	for i := 1; i < 4; i++ {
		assert.Equal(t, uint32(0), packedAt(s, i))
	}
}

func TestShowBarGraphRamp(t *testing.T) {
	// 128 of 255 over 10 pixels: v = 128*10/255 = 5. Pixels 0..5 ramp from
	// blue to red by index, 6..9 stay dark.
	s, _ := newTestStrip(10, neopixel.ModeGRB)
	assert.NoError(t, s.ShowBarGraph(128, 255))
	for i := 0; i <= 5; i++ {
		b := i * 255 / 9
		assert.Equal(t, pixel.RGB(b, 0, 255-b), packedAt(s, i), "pixel %d", i)
	}
	for i := 6; i < 10; i++ {
		assert.Equal(t, uint32(0), packedAt(s, i), "pixel %d", i)
	}
}

func TestShowBarGraphNegativeValue(t *testing.T) {
	s, _ := newTestStrip(10, neopixel.ModeGRB)
	assert.NoError(t, s.ShowBarGraph(-128, 255))
	want := packedAt(s, 3)
	assert.NoError(t, s.ShowBarGraph(128, 255))
	assert.Equal(t, want, packedAt(s, 3), "magnitude is what matters")
}

func TestShowBarGraphSinglePixel(t *testing.T) {
	s, _ := newTestStrip(1, neopixel.ModeGRB)
	assert.NoError(t, s.ShowBarGraph(5, 5))
	assert.Equal(t, pixel.RGB(0, 0, 255), packedAt(s, 0))
}

func TestEaseBrightnessWindow(t *testing.T) {
	s, tx := newTestStrip(10, neopixel.ModeGRB)
	_ = s.ShowColor(pixel.White)
	s.EaseBrightness()
	assert.Equal(t, 1, tx.frames, "easing does not flush")

	mid := 5
	for k := 0; k < 10; k++ {
		mul := 255 * k * k / (mid * mid)
		if k > mid {
			d := 10 - 1 - k
			mul = 255 * d * d / (mid * mid)
		}
		want := 255 * mul >> 8
		r, g, b := rgbAt(s, k)
		if r != want || g != want || b != want {
			t.Errorf("pixel %d: got (%d,%d,%d), want %d", k, r, g, b, want)
		}
	}
	// Edges dark, midpoint at full.
	r, _, _ := rgbAt(s, 0)
	assert.Equal(t, 0, r)
	r, _, _ = rgbAt(s, 5)
	assert.Equal(t, 254, r, "255*255>>8")
}

func TestEaseBrightnessOnRange(t *testing.T) {
	s, _ := newTestStrip(8, neopixel.ModeGRB)
	_ = s.ShowColor(pixel.White)
	s.Range(2, 4).EaseBrightness()

	r, _, _ := rgbAt(s, 0)
	assert.Equal(t, 255, r, "outside the range untouched")
	r, _, _ = rgbAt(s, 2)
	assert.Equal(t, 0, r, "range edge eased to dark")
}

func TestEaseBrightnessTinyStrips(t *testing.T) {
	for _, n := range []int{0, 1} {
		s, _ := newTestStrip(n, neopixel.ModeGRB)
		if n == 1 {
			s.SetPixelColor(0, pixel.White)
		}
		s.EaseBrightness() // must not panic or divide by zero
		if n == 1 {
			r, _, _ := rgbAt(s, 0)
			assert.Equal(t, 255, r, "single pixel left as-is")
		}
	}
}

func TestEaseBrightnessRGBWCoversWhite(t *testing.T) {
	s, _ := newTestStrip(6, neopixel.ModeRGBW)
	for i := 0; i < 6; i++ {
		s.SetPixelColor(i, pixel.White)
		s.SetPixelWhiteLED(i, 255)
	}
	s.EaseBrightness()
	buf := s.Buffer().Bytes()
	assert.Equal(t, byte(0), buf[3], "white channel eased with the rest")
	mid := 3
	assert.NotEqual(t, byte(0), buf[mid*4+3], "midpoint keeps white")
}
