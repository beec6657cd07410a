package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menubot/internal/entity"
)

type renderRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateRender рендерит меню из текста запроса.
// С query-параметром format=png возвращает изображение напрямую.
func (h *RenderHandler) CreateRender(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text field is required"})
		return
	}

	render, data, err := h.service.RenderMenu(c.Request.Context(), entity.SourceHTTP, 0, req.Text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if c.Query("format") == "png" {
		c.Data(http.StatusOK, "image/png", data)
		return
	}

	c.JSON(http.StatusCreated, entity.RenderResponse{
		ID:     render.ID,
		Status: render.Status,
	})
}

func (h *RenderHandler) GetRender(c *gin.Context) {
	id := c.Param("id")

	render, err := h.service.GetRender(id)
	if err != nil {
		if errors.Is(err, entity.ErrRenderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Render not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, render)
}

func (h *RenderHandler) GetRenderImage(c *gin.Context) {
	id := c.Param("id")

	path, err := h.service.GetRenderImagePath(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Render not found"})
		return
	}

	c.File(path)
}

func (h *RenderHandler) DeleteRender(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteRender(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Render not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Render deleted successfully"})
}
