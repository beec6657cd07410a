package compositor

import (
	"fmt"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"menubot/config"
	"menubot/internal/entity"
)

// Имена гарнитур, на которые ссылаются зоны и спаны
const (
	FaceTitle       = "title"
	FaceDescription = "description"
	FaceWarning     = "warning"
	FaceDate        = "date"
)

// FaceStyle - загруженная гарнитура со стилем отрисовки
type FaceStyle struct {
	Face      font.Face
	Color     color.NRGBA
	Uppercase bool
}

// FaceSet хранит все гарнитуры процесса. Заполняется один раз при старте.
type FaceSet struct {
	faces map[string]*FaceStyle
}

func NewFaceSet() *FaceSet {
	return &FaceSet{faces: make(map[string]*FaceStyle)}
}

func (s *FaceSet) Add(name string, style *FaceStyle) {
	s.faces[name] = style
}

func (s *FaceSet) Get(name string) (*FaceStyle, error) {
	st, ok := s.faces[name]
	if !ok {
		return nil, fmt.Errorf("face %q: %w", name, entity.ErrUnknownFace)
	}
	return st, nil
}

// LoadFaces загружает TTF шрифты из конфигурации:
// title, description, warning (title увеличенный на множитель) и date (= title).
func LoadFaces(cfg config.FontsConfig) (*FaceSet, error) {
	set := NewFaceSet()

	title, err := loadFace(cfg.Title.File, cfg.Title.Size)
	if err != nil {
		return nil, err
	}
	set.Add(FaceTitle, &FaceStyle{
		Face:      title,
		Color:     ParseHexColor(cfg.Title.Color, color.NRGBA{A: 255}),
		Uppercase: cfg.Title.Uppercase,
	})

	desc, err := loadFace(cfg.Description.File, cfg.Description.Size)
	if err != nil {
		return nil, err
	}
	set.Add(FaceDescription, &FaceStyle{
		Face:  desc,
		Color: ParseHexColor(cfg.Description.Color, color.NRGBA{A: 255}),
	})

	multiplier := cfg.WarningMultiplier
	if multiplier <= 0 {
		multiplier = 1.2
	}
	warning, err := loadFace(cfg.Title.File, cfg.Title.Size*multiplier)
	if err != nil {
		return nil, err
	}
	set.Add(FaceWarning, &FaceStyle{Face: warning, Color: color.NRGBA{A: 255}})

	// Блок дат использует обычный title
	set.Add(FaceDate, &FaceStyle{
		Face:  title,
		Color: ParseHexColor(cfg.Title.Color, color.NRGBA{A: 255}),
	})

	return set, nil
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build face for %s: %w", path, err)
	}
	return face, nil
}
