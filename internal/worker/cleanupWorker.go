package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"menubot/internal/service"
)

// RenderCleanupWorker периодически удаляет устаревшие рендеры,
// чтобы каталог выдачи не рос бесконечно
type RenderCleanupWorker struct {
	renderService service.RenderService
	interval      time.Duration
	retention     time.Duration
}

func NewRenderCleanupWorker(renderService service.RenderService, interval, retention time.Duration) *RenderCleanupWorker {
	return &RenderCleanupWorker{
		renderService: renderService,
		interval:      interval,
		retention:     retention,
	}
}

func (w *RenderCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Render cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Render cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanupExpiredRenders(ctx)
		}
	}
}

// cleanupExpiredRenders удаляет рендеры старше срока хранения
func (w *RenderCleanupWorker) cleanupExpiredRenders(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)

	deleted, err := w.renderService.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logrus.Errorf("Failed to cleanup expired renders: %v", err)
		return
	}

	if deleted > 0 {
		logrus.Infof("Render cleanup completed: %d renders removed", deleted)
	}
}
