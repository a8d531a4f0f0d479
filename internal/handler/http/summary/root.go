package summary

import (
	"net/http"

	"resumen-backend/internal/handler/http/respond"
)

// RootHandler answers GET / so load balancers and the frontend can tell the
// backend is up.
type RootHandler struct{}

// ServeHTTP ルート
// @Summary      Estado del backend
// @Tags         resumen
// @Produce      json
// @Success      200 {object} StatusResponse
// @Router       / [get]
func (RootHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, StatusResponse{Message: MsgBackendAlive})
}
