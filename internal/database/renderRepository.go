package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"menubot/internal/entity"
	"menubot/internal/pkg/storage"
)

func NewRenderRepository(storage storage.FileStorage) RenderRepository {
	return &fileRenderRepository{storage: storage}
}

func (r *fileRenderRepository) Save(render *entity.Render, png io.Reader) error {
	if err := r.storage.Save(r.imagePath(render.ID), png); err != nil {
		return err
	}

	data, err := json.Marshal(render)
	if err != nil {
		return err
	}
	return r.storage.Save(r.metadataPath(render.ID), bytes.NewReader(data))
}

func (r *fileRenderRepository) FindByID(id string) (*entity.Render, error) {
	reader, err := r.storage.Get(r.metadataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, entity.ErrRenderNotFound
		}
		return nil, err
	}
	defer reader.Close()

	var render entity.Render
	if err := json.NewDecoder(reader).Decode(&render); err != nil {
		return nil, err
	}
	return &render, nil
}

// ImagePath возвращает абсолютный путь к PNG файлу рендера
func (r *fileRenderRepository) ImagePath(id string) (string, error) {
	path := r.imagePath(id)
	if !r.storage.Exists(path) {
		return "", entity.ErrRenderNotFound
	}
	return r.storage.FullPath(path), nil
}

func (r *fileRenderRepository) Delete(id string) error {
	if !r.storage.Exists(r.metadataPath(id)) {
		return entity.ErrRenderNotFound
	}
	if err := r.storage.Delete(r.imagePath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return r.storage.Delete(r.metadataPath(id))
}

// DeleteOlderThan удаляет рендеры старше cutoff, возвращает число удаленных
func (r *fileRenderRepository) DeleteOlderThan(cutoff time.Time) (int, error) {
	names, err := r.storage.List("metadata")
	if err != nil {
		return 0, fmt.Errorf("failed to list metadata: %w", err)
	}

	deleted := 0
	for _, name := range names {
		id := strings.TrimSuffix(name, ".json")
		render, err := r.FindByID(id)
		if err != nil {
			continue
		}
		if render.CreatedAt.Before(cutoff) {
			if err := r.Delete(id); err == nil {
				deleted++
			}
		}
	}
	return deleted, nil
}

func (r *fileRenderRepository) imagePath(id string) string {
	return filepath.Join("renders", id+".png")
}

func (r *fileRenderRepository) metadataPath(id string) string {
	return filepath.Join("metadata", id+".json")
}
