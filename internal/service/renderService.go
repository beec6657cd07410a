package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"menubot/internal/entity"
)

// RenderMenu разбирает текст меню, компонует изображение на шаблоне
// и сохраняет результат. Повторный текст отдается из кэша.
func (s *renderService) RenderMenu(ctx context.Context, source string, chatID int64, text string) (*entity.Render, []byte, error) {
	start := time.Now()

	menu, err := s.parser.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	textHash := hashMenuText(text)
	if id, ok := s.cache.GetID(ctx, textHash); ok {
		if render, data, err := s.loadCached(id); err == nil {
			logrus.WithFields(logrus.Fields{
				"render_id": id,
				"source":    source,
			}).Info("Render served from cache")
			return render, data, nil
		}
	}

	request := s.buildRequest(menu)

	img, err := s.compositor.Render(request)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, nil, err
	}

	render := &entity.Render{
		ID:        uuid.New().String(),
		Status:    entity.RenderStatusCompleted,
		Source:    source,
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(render, bytes.NewReader(buf.Bytes())); err != nil {
		return nil, nil, err
	}

	s.cache.SetID(ctx, textHash, render.ID)

	duration := time.Since(start)
	if err := s.producer.SendRenderEvent(entity.RenderEvent{
		RenderID:   render.ID,
		Source:     source,
		ChatID:     chatID,
		Status:     render.Status,
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now().UTC(),
	}); err != nil {
		logrus.Warnf("Failed to publish render event: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"render_id": render.ID,
		"source":    source,
		"duration":  duration,
	}).Info("Menu rendered")

	return render, buf.Bytes(), nil
}

func (s *renderService) loadCached(id string) (*entity.Render, []byte, error) {
	render, err := s.repo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	path, err := s.repo.ImagePath(id)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return render, data, nil
}

func (s *renderService) GetRender(id string) (*entity.Render, error) {
	return s.repo.FindByID(id)
}

func (s *renderService) GetRenderImagePath(id string) (string, error) {
	return s.repo.ImagePath(id)
}

func (s *renderService) DeleteRender(id string) error {
	return s.repo.Delete(id)
}

func (s *renderService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return s.repo.DeleteOlderThan(cutoff)
}

// hashMenuText нормализует переводы строк и пробелы по краям,
// чтобы одинаковые меню с разных клиентов попадали в один ключ кэша
func hashMenuText(text string) string {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
