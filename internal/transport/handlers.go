package transport

import (
	"menubot/internal/service"
)

type RenderHandler struct {
	service service.RenderService
}

func NewRenderHandler(service service.RenderService) *RenderHandler {
	return &RenderHandler{service: service}
}
