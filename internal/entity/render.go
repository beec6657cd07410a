package entity

import "time"

// Источник запроса на рендер
const (
	SourceTelegram = "telegram"
	SourceHTTP     = "http"
)

const (
	RenderStatusCompleted = "completed"
)

// Render - метаданные сгенерированного изображения меню
type Render struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// RenderEvent публикуется в Kafka после каждого рендера
type RenderEvent struct {
	RenderID   string    `json:"render_id"`
	Source     string    `json:"source"`
	ChatID     int64     `json:"chat_id,omitempty"`
	Status     string    `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

type RenderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
