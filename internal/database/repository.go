package database

import (
	"io"
	"time"

	"menubot/internal/entity"
	"menubot/internal/pkg/storage"
)

type RenderRepository interface {
	Save(render *entity.Render, png io.Reader) error
	FindByID(id string) (*entity.Render, error)
	ImagePath(id string) (string, error)
	Delete(id string) error
	DeleteOlderThan(cutoff time.Time) (int, error)
}

type fileRenderRepository struct {
	storage storage.FileStorage
}
