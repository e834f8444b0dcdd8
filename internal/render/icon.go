package render

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	iconFill      = color.RGBA{0xb3, 0x1b, 0x24, 0xff}
	iconRim       = color.RGBA{0x5c, 0x0a, 0x10, 0xff}
	iconHighlight = color.RGBA{0xf2, 0x8b, 0x82, 0xff}
)

// drawIcon paints the vitality emblem into rect, dimmed when depleted
func drawIcon(dst draw.Image, rect image.Rectangle, depleted bool) {
	size := rect.Dx()
	if size <= 0 {
		return
	}

	icon := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	outer := float64(size) / 2
	inner := outer * 0.8

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			d2 := dx*dx + dy*dy
			hx, hy := dx+inner*0.35, dy+inner*0.35

			var px color.RGBA
			switch {
			case d2 > outer*outer:
				continue
			case d2 > inner*inner:
				px = iconRim
			case hx*hx+hy*hy < (inner*0.25)*(inner*0.25):
				px = iconHighlight
			default:
				px = iconFill
			}

			if depleted {
				px = dim(px, depletedLevel)
			}
			icon.SetRGBA(x, y, px)
		}
	}

	draw.Draw(dst, rect, icon, image.Point{}, draw.Over)
}

// dim scales the color channels like a CSS brightness filter
func dim(c color.RGBA, level float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * level),
		G: uint8(float64(c.G) * level),
		B: uint8(float64(c.B) * level),
		A: c.A,
	}
}
