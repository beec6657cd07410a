package compositor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"menubot/config"
	"menubot/internal/entity"
)

type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Zone - именованная область шаблона. Набор зон загружается один раз
// при старте и далее только читается.
type Zone struct {
	ID        string
	Kind      Kind
	X         int
	Y         int
	Width     int
	Height    int // фиксированная высота (рамочные блоки, image-зоны)
	MaxHeight int // предел высоты для текучего текста
	Required  bool
	Face      string
	Align     Align
}

// maxBottom - нижняя граница зоны для проверки выхода за пределы шаблона
func (z Zone) maxBottom() int {
	h := z.Height
	if z.MaxHeight > h {
		h = z.MaxHeight
	}
	return z.Y + h
}

func (z Zone) contentHeight() int {
	if z.Height > 0 {
		return z.Height
	}
	return z.MaxHeight
}

// ZonesFromConfig валидирует и переводит zones.yaml в зоны компоновщика,
// сохраняя порядок объявления
func ZonesFromConfig(cfgs []config.ZoneConfig) ([]Zone, error) {
	seen := make(map[string]struct{}, len(cfgs))
	zones := make([]Zone, 0, len(cfgs))

	for _, zc := range cfgs {
		if zc.ID == "" {
			return nil, fmt.Errorf("zone without id in zones.yaml")
		}
		if _, ok := seen[zc.ID]; ok {
			return nil, fmt.Errorf("zone %q: %w", zc.ID, entity.ErrDuplicateZone)
		}
		seen[zc.ID] = struct{}{}

		kind := Kind(zc.Kind)
		if kind == "" {
			kind = KindText
		}
		if kind != KindText && kind != KindImage {
			return nil, fmt.Errorf("zone %q: unknown kind %q", zc.ID, zc.Kind)
		}
		if kind == KindImage && zc.Height <= 0 {
			return nil, fmt.Errorf("zone %q: image zone requires height", zc.ID)
		}

		face := zc.Face
		if face == "" {
			face = FaceTitle
		}

		align := Align(zc.Align)
		if align == "" {
			align = AlignLeft
		}

		zones = append(zones, Zone{
			ID:        zc.ID,
			Kind:      kind,
			X:         zc.X,
			Y:         zc.Y,
			Width:     zc.Width,
			Height:    zc.Height,
			MaxHeight: zc.MaxHeight,
			Required:  zc.Required,
			Face:      face,
			Align:     align,
		})
	}
	return zones, nil
}

// Span - фрагмент текста одной гарнитурой
type Span struct {
	Text          string
	Face          string
	SpacingBefore int
}

// Box - стиль рамочного блока (диапазон дат, предупреждение).
// Строки контента рисуются по центру блока.
type Box struct {
	Background    color.NRGBA
	HasBackground bool
	Border        color.NRGBA
	TextColor     color.NRGBA
	Radius        int
	BorderWidth   int
	Padding       int
	LineSpacing   int
}

// Content - значение для одной зоны в запросе на рендер
type Content struct {
	Spans []Span // текстовые зоны
	Image []byte // image-зоны: закодированный растр
	Box   *Box   // если задан, текст рисуется внутри рамочного блока
}

// Request - отображение идентификаторов зон на контент одного рендера
type Request map[string]Content

// Compositor накладывает контент на копию шаблона по объявленным зонам.
// Шаблон, зоны и гарнитуры после создания не изменяются.
type Compositor struct {
	tpl         *Template
	zones       []Zone
	faces       *FaceSet
	lineSpacing int

	// opentype.Face не потокобезопасен при растеризации глифов
	mu sync.Mutex
}

func New(tpl *Template, zones []Zone, faces *FaceSet, lineSpacing int) *Compositor {
	return &Compositor{
		tpl:         tpl,
		zones:       zones,
		faces:       faces,
		lineSpacing: lineSpacing,
	}
}

// Zones возвращает зоны в порядке объявления
func (c *Compositor) Zones() []Zone {
	return c.zones
}

// Validate проверяет, что все зоны лежат в границах шаблона.
// Вызывается при старте, до первого рендера.
func (c *Compositor) Validate() error {
	for _, z := range c.zones {
		if err := c.checkBounds(z); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compositor) checkBounds(z Zone) error {
	if z.X < 0 || z.Y < 0 || z.Width <= 0 ||
		z.X+z.Width > c.tpl.width || z.maxBottom() > c.tpl.height {
		return fmt.Errorf("zone %q (%d,%d %dx%d/%d) on template %dx%d: %w",
			z.ID, z.X, z.Y, z.Width, z.Height, z.MaxHeight,
			c.tpl.width, c.tpl.height, entity.ErrZoneOutOfBounds)
	}
	return nil
}

// Render накладывает контент запроса на копию шаблона.
// Зоны обрабатываются в порядке объявления: при пересечении побеждает
// объявленная позже. Сам шаблон никогда не изменяется.
func (c *Compositor) Render(req Request) (image.Image, error) {
	dst := imaging.Clone(c.tpl.img)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, z := range c.zones {
		content, ok := req[z.ID]
		if !ok {
			if z.Required {
				return nil, fmt.Errorf("zone %q: %w", z.ID, entity.ErrMissingZoneValue)
			}
			continue
		}

		if err := c.checkBounds(z); err != nil {
			return nil, err
		}

		switch z.Kind {
		case KindImage:
			pasted, err := c.drawImageZone(dst, z, content)
			if err != nil {
				return nil, err
			}
			dst = pasted
		case KindText:
			if err := c.drawTextZone(dst, z, content); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

func (c *Compositor) drawImageZone(dst *image.NRGBA, z Zone, content Content) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(content.Image))
	if err != nil {
		return nil, fmt.Errorf("zone %q: %v: %w", z.ID, err, entity.ErrInvalidImageContent)
	}

	fitted := imaging.Resize(img, z.Width, z.Height, imaging.Lanczos)
	return imaging.Paste(dst, fitted, image.Pt(z.X, z.Y)), nil
}

func (c *Compositor) drawTextZone(dst *image.NRGBA, z Zone, content Content) error {
	if content.Box != nil {
		return c.drawBoxedText(dst, z, content)
	}

	maxHeight := z.contentHeight()
	y := z.Y
	used := 0

	for _, span := range content.Spans {
		style, err := c.faces.Get(span.Face)
		if err != nil {
			return err
		}

		text := span.Text
		if style.Uppercase {
			text = strings.ToUpper(text)
		}

		layout := NewTextLayout(style.Face, c.lineSpacing)
		lines := layout.Wrap(text, z.Width)
		height := layout.Height(lines)

		if maxHeight > 0 && used+span.SpacingBefore+height > maxHeight {
			logrus.WithFields(logrus.Fields{
				"zone": z.ID,
				"used": used,
				"max":  maxHeight,
			}).Warn("Zone content truncated")
			break
		}

		y += span.SpacingBefore
		used += span.SpacingBefore

		layout.Draw(dst, lines, z.X, y, z.Width, z.Align, style.Color)
		y += height
		used += height
	}

	return nil
}

// drawBoxedText рисует скругленный блок с рамкой и центрированными строками.
// Зона с фиксированной высотой задает блок целиком, иначе блок
// подгоняется под текст и центрируется в зоне.
func (c *Compositor) drawBoxedText(dst *image.NRGBA, z Zone, content Content) error {
	box := content.Box

	type measuredLine struct {
		text  string
		style *FaceStyle
		w, h  int
	}

	lines := make([]measuredLine, 0, len(content.Spans))
	textWidth, textHeight := 0, 0
	for i, span := range content.Spans {
		style, err := c.faces.Get(span.Face)
		if err != nil {
			return err
		}
		text := span.Text
		if style.Uppercase {
			text = strings.ToUpper(text)
		}
		layout := NewTextLayout(style.Face, 0)
		w := layout.MeasureString(text)
		h := layout.LineHeight()
		lines = append(lines, measuredLine{text: text, style: style, w: w, h: h})

		if w > textWidth {
			textWidth = w
		}
		textHeight += h
		if i > 0 {
			textHeight += box.LineSpacing
		}
	}

	var rect image.Rectangle
	if z.Height > 0 {
		rect = image.Rect(z.X, z.Y, z.X+z.Width, z.Y+z.Height)
	} else {
		blockW := textWidth + 2*box.Padding
		if blockW > z.Width {
			blockW = z.Width
		}
		blockH := textHeight + 2*box.Padding
		if z.MaxHeight > 0 && blockH > z.MaxHeight {
			blockH = z.MaxHeight
		}
		blockX := z.X + (z.Width-blockW)/2
		blockY := z.Y + (z.MaxHeight-blockH)/2
		rect = image.Rect(blockX, blockY, blockX+blockW, blockY+blockH)
	}

	if box.HasBackground {
		fillRoundedRect(dst, rect, box.Radius, box.Background)
	}
	strokeRoundedRect(dst, rect, box.Radius, box.BorderWidth, box.Border)

	currentY := rect.Min.Y + (rect.Dy()-textHeight)/2
	for _, line := range lines {
		layout := NewTextLayout(line.style.Face, 0)
		lineX := rect.Min.X + (rect.Dx()-line.w)/2
		layout.Draw(dst, []string{line.text}, lineX, currentY, line.w, AlignLeft, box.TextColor)
		currentY += line.h + box.LineSpacing
	}

	return nil
}
