package types

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

/////////////////////////////////////////////////////////////////////////////
// PALETTE MAPPING
/////////////////////////////////////////////////////////////////////////////

// RGB components of the xterm palette entry for an 8-bit color index.
func rgbFromIndex(index uint8) (r, g, b uint8) {
	switch {
	case index < 16: // 4-bit
		var level uint8
		switch {
		case index >= 9:
			level = 255
		case index == 7:
			level = 192
		default:
			level = 128
		}
		pick := func(bit uint8) uint8 {
			if index == 8 {
				return 128
			}
			if index&bit != 0 {
				return level
			}
			return 0
		}
		return pick(1), pick(2), pick(4)

	case index < 232: // 6x6x6 cube
		i := index - 16
		ramp := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 95 + 40*(v-1)
		}
		return ramp((i / 36) % 6), ramp((i / 6) % 6), ramp(i % 6)

	default: // grayscale ramp
		level := (index-232)*10 + 8
		return level, level, level
	}
}

// ToRGB returns the 24-bit components of the color, expanding standard and
// indexed colors through the xterm palette.
func (c Color) ToRGB() (r, g, b uint8) {
	if c.Type == ColorRGB {
		return c.R, c.G, c.B
	}
	return rgbFromIndex(c.Index)
}

// ExactIndex returns the 8-bit palette index whose xterm RGB value matches
// the color exactly. The second result is false when there is no exact
// palette entry; callers wanting a best effort use NearestIndexed.
func (c Color) ExactIndex() (uint8, bool) {
	if c.Type != ColorRGB {
		return c.Index, true
	}
	r, g, b := c.R, c.G, c.B

	// 4-bit entries
	switch {
	case r == 192 && g == 192 && b == 192:
		return 7, true
	case r == 128 && g == 128 && b == 128:
		return 8, true
	case onOff(r, 128) && onOff(g, 128) && onOff(b, 128):
		return bitIf(r) | bitIf(g)<<1 | bitIf(b)<<2, true
	case onOff(r, 255) && onOff(g, 255) && onOff(b, 255):
		return 8 + (bitIf(r) | bitIf(g)<<1 | bitIf(b)<<2), true
	}

	// 6x6x6 cube
	if cubeLevel(r) && cubeLevel(g) && cubeLevel(b) {
		return 16 + cubeIndex(r)*36 + cubeIndex(g)*6 + cubeIndex(b), true
	}

	// grayscale ramp
	if r == g && g == b && r >= 8 && (r-8)%10 == 0 {
		n := (r - 8) / 10
		switch n {
		case 12:
			return 8, true
		case 24:
			return 0, false
		default:
			return n + 232, true
		}
	}

	return 0, false
}

func onOff(v, level uint8) bool { return v == 0 || v == level }

func bitIf(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 1
}

func cubeLevel(v uint8) bool {
	return v == 0 || (v >= 95 && (v-95)%40 == 0 && v <= 255)
}

func cubeIndex(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return (v-95)/40 + 1
}

// NearestIndexed returns the 8-bit palette color closest to c, by CIE Lab
// distance when no exact entry exists.
func NearestIndexed(c Color) Color {
	if n, ok := c.ExactIndex(); ok {
		return Indexed(n)
	}
	return Indexed(nearestIn(c, 0, 255))
}

// Nearest16 returns the standard color closest to c by CIE Lab distance.
func Nearest16(c Color) Color {
	if c.Type == ColorStandard {
		return c
	}
	return Color{Type: ColorStandard, Index: nearestIn(c, 0, 15)}
}

func nearestIn(c Color, lo, hi int) uint8 {
	r, g, b := c.ToRGB()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := lo
	bestDist := -1.0
	for i := lo; i <= hi; i++ {
		pr, pg, pb := rgbFromIndex(uint8(i))
		entry := colorful.Color{R: float64(pr) / 255, G: float64(pg) / 255, B: float64(pb) / 255}
		d := target.DistanceLab(entry)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}
