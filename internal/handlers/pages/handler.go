package pages

import (
	"context"
	"net/http"

	"github.com/Nazarious-ucu/newsletter-manager/internal/handlers"
	"github.com/gin-gonic/gin"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{DB: db}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", handlers.NewView(c, "Home"))
}

func (h *Handler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard", handlers.NewView(c, "Dashboard"))
}

func (h *Handler) NotFound(c *gin.Context) {
	handlers.RespondError(c, http.StatusNotFound, "Page not found.")
}

// Health
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200
// @Failure 503
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlers.TimeoutDuration)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
