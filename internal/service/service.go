package service

import (
	"context"
	"time"

	"menubot/config"
	"menubot/internal/database"
	"menubot/internal/entity"
	"menubot/internal/parser"
	"menubot/internal/pkg/cache"
	"menubot/internal/pkg/compositor"
	"menubot/internal/pkg/kafka"
)

type RenderService interface {
	RenderMenu(ctx context.Context, source string, chatID int64, text string) (*entity.Render, []byte, error)
	GetRender(id string) (*entity.Render, error)
	GetRenderImagePath(id string) (string, error)
	DeleteRender(id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type renderService struct {
	cfg        *config.Config
	parser     *parser.MenuParser
	compositor *compositor.Compositor
	repo       database.RenderRepository
	cache      cache.RenderCache
	producer   kafka.Producer
}

func NewRenderService(
	cfg *config.Config,
	menuParser *parser.MenuParser,
	comp *compositor.Compositor,
	repo database.RenderRepository,
	renderCache cache.RenderCache,
	producer kafka.Producer,
) RenderService {
	return &renderService{
		cfg:        cfg,
		parser:     menuParser,
		compositor: comp,
		repo:       repo,
		cache:      renderCache,
		producer:   producer,
	}
}
