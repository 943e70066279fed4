// Package pixel holds the raw channel buffer and the packed-color math for
// addressable LED strips. Colors are 24-bit packed integers, 0xRRGGBB.
package pixel

// Mode selects the channel layout a strip was manufactured with.
type Mode int

const (
	// ModeGRB is the common WS2812 wire order: green, red, blue.
	ModeGRB Mode = iota
	// ModeRGBW adds a fourth white channel.
	ModeRGBW
	// ModeRGB is for strips wired red, green, blue.
	ModeRGB
)

// Modes maps config-file names to modes.
var Modes = map[string]Mode{
	"GRB":  ModeGRB,
	"RGBW": ModeRGBW,
	"RGB":  ModeRGB,
}

// Stride returns the number of buffer bytes per pixel.
func (m Mode) Stride() int {
	if m == ModeRGBW {
		return 4
	}
	return 3
}

func (m Mode) String() string {
	switch m {
	case ModeRGBW:
		return "RGBW"
	case ModeRGB:
		return "RGB"
	default:
		return "GRB"
	}
}

// Named packed colors.
const (
	Red    uint32 = 0xFF0000
	Orange uint32 = 0xFFA500
	Yellow uint32 = 0xFFFF00
	Green  uint32 = 0x00FF00
	Blue   uint32 = 0x0000FF
	Indigo uint32 = 0x4B0082
	Violet uint32 = 0x8A2BE2
	Purple uint32 = 0xFF00FF
	White  uint32 = 0xFFFFFF
	Black  uint32 = 0x000000
)

// RGB packs three channels into a 24-bit color. Channels are masked to
// 8 bits, out-of-range values wrap rather than error.
func RGB(r, g, b int) uint32 {
	return uint32(r&0xFF)<<16 | uint32(g&0xFF)<<8 | uint32(b&0xFF)
}

// UnpackR returns the red channel of a packed color.
func UnpackR(c uint32) int {
	return int(c >> 16 & 0xFF)
}

// UnpackG returns the green channel of a packed color.
func UnpackG(c uint32) int {
	return int(c >> 8 & 0xFF)
}

// UnpackB returns the blue channel of a packed color.
func UnpackB(c uint32) int {
	return int(c & 0xFF)
}

// HSL converts hue (degrees), saturation and luminosity (both 0-99) to a
// packed color. The conversion is done entirely in ×256 fixed point with
// truncating division, so results are reproducible on any platform. Hue is
// taken modulo 360, saturation and luminosity are clamped.
func HSL(h, s, l int) uint32 {
	h %= 360
	if h < 0 {
		h += 360
	}
	s = clamp(0, 99, s)
	l = clamp(0, 99, l)

	c := (100 - abs(2*l-100)) * s << 8 / 10000 // chroma, [0,255]
	h1 := h / 60                               // hexagon sector, [0,5]
	h2 := (h - h1*60) * 256 / 60               // position within sector, [0,255]
	temp := abs((h1%2)<<8 + h2 - 256)
	x := c * (256 - temp) >> 8 // second-largest channel, [0,255]

	var r, g, b int
	switch h1 {
	case 0:
		r, g = c, x
	case 1:
		r, g = x, c
	case 2:
		g, b = c, x
	case 3:
		g, b = x, c
	case 4:
		r, b = x, c
	case 5:
		r, b = c, x
	}
	m := ((l*2<<8)/100 - c) / 2 // lightness offset
	return RGB(r+m, g+m, b+m)
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
