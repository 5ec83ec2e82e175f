package http

import (
	"net/http"

	"github.com/tmarnet/go-shop/internal/utils"
	"github.com/tmarnet/go-shop/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.version}, http.StatusOK)
}
