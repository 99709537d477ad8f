package http

import (
	"net/http"

	"github.com/MKhiriev/go-awl-bridge/internal/utils"
	"github.com/MKhiriev/go-awl-bridge/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if r.URL.Query().Has("build") {
		_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.SessionService.Status()

	code := http.StatusOK
	if status.State != models.SessionConnected {
		code = http.StatusServiceUnavailable
	}

	_, _ = utils.WriteJSON(w, status, code)
}
