package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleHealth returns basic service health plus whether a dataset is
// currently loaded.
func (h *Handler) HandleHealth(c echo.Context) error {
	_, loaded := h.session.Info()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"datasetLoaded": loaded,
	})
}
