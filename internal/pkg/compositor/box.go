package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// fillRoundedRect закрашивает прямоугольник со скругленными углами
func fillRoundedRect(dst draw.Image, rect image.Rectangle, radius int, col color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if insideRoundedRect(x, y, rect, radius) {
				dst.Set(x, y, col)
			}
		}
	}
}

// strokeRoundedRect рисует рамку толщиной width по контуру
// скругленного прямоугольника
func strokeRoundedRect(dst draw.Image, rect image.Rectangle, radius, width int, col color.Color) {
	if width <= 0 {
		return
	}
	inner := rect.Inset(width)
	innerRadius := radius - width
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if insideRoundedRect(x, y, rect, radius) && !insideRoundedRect(x, y, inner, innerRadius) {
				dst.Set(x, y, col)
			}
		}
	}
}

// insideRoundedRect проверяет, лежит ли пиксель внутри прямоугольника
// rect со скругленными на radius углами
func insideRoundedRect(x, y int, rect image.Rectangle, radius int) bool {
	if !image.Pt(x, y).In(rect) {
		return false
	}
	if radius <= 0 {
		return true
	}

	r := radius
	if max := rect.Dx() / 2; r > max {
		r = max
	}
	if max := rect.Dy() / 2; r > max {
		r = max
	}

	// Центры угловых дуг
	left := rect.Min.X + r
	right := rect.Max.X - 1 - r
	top := rect.Min.Y + r
	bottom := rect.Max.Y - 1 - r

	var cx, cy int
	switch {
	case x < left && y < top:
		cx, cy = left, top
	case x > right && y < top:
		cx, cy = right, top
	case x < left && y > bottom:
		cx, cy = left, bottom
	case x > right && y > bottom:
		cx, cy = right, bottom
	default:
		return true
	}

	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// ParseHexColor разбирает "#RRGGBB"; при ошибке возвращает fallback
func ParseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
