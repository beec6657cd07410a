package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextLayout выполняет перенос строк, расчет высоты
// и отрисовку многострочного текста одной гарнитурой.
type TextLayout struct {
	face        font.Face
	lineSpacing int
}

func NewTextLayout(face font.Face, lineSpacing int) *TextLayout {
	return &TextLayout{face: face, lineSpacing: lineSpacing}
}

func (l *TextLayout) MeasureString(s string) int {
	return font.MeasureString(l.face, s).Ceil()
}

// LineHeight - высота одной строки по метрикам гарнитуры
func (l *TextLayout) LineHeight() int {
	m := l.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Wrap разбивает текст по словам так, чтобы каждая строка
// помещалась в maxWidth. Слово шире maxWidth попадает в строку целиком.
func (l *TextLayout) Wrap(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if l.MeasureString(candidate) <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			lines = append(lines, word)
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// Height - высота блока из len(lines) строк с межстрочным интервалом
func (l *TextLayout) Height(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	return len(lines)*l.LineHeight() + (len(lines)-1)*l.lineSpacing
}

// Draw рисует строки начиная с верхней границы y.
// Возвращает высоту нарисованного блока.
func (l *TextLayout) Draw(dst draw.Image, lines []string, x, y, width int, align Align, col color.Color) int {
	ascent := l.face.Metrics().Ascent.Ceil()
	lineHeight := l.LineHeight()

	currentY := y
	for _, line := range lines {
		lineX := x
		if align == AlignCenter {
			lineX = x + (width-l.MeasureString(line))/2
		}

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: l.face,
			Dot:  fixed.P(lineX, currentY+ascent),
		}
		d.DrawString(line)

		currentY += lineHeight + l.lineSpacing
	}

	return l.Height(lines)
}
