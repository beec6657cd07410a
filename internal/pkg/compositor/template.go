package compositor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"menubot/internal/entity"
)

// Template - неизменяемое фоновое изображение известного размера.
// Загружается один раз при старте и далее только читается.
type Template struct {
	img    image.Image
	width  int
	height int
}

// LoadTemplate открывает файл шаблона и сверяет фактический размер
// с заявленным в конфигурации. Несовпадение - фатальная ошибка конфигурации.
func LoadTemplate(path string, width, height int) (*Template, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("template %s is %dx%d, configuration declares %dx%d: %w",
			path, b.Dx(), b.Dy(), width, height, entity.ErrTemplateDimensionMismatch)
	}

	return &Template{img: img, width: width, height: height}, nil
}

// NewTemplate оборачивает уже декодированное изображение,
// проверяя заявленный размер. Используется в тестах и при рендере в память.
func NewTemplate(img image.Image, width, height int) (*Template, error) {
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("template is %dx%d, declared %dx%d: %w",
			b.Dx(), b.Dy(), width, height, entity.ErrTemplateDimensionMismatch)
	}
	return &Template{img: img, width: width, height: height}, nil
}

func (t *Template) Width() int  { return t.width }
func (t *Template) Height() int { return t.height }
