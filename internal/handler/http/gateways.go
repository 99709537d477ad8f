package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-awl-bridge/internal/app"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
	"github.com/MKhiriev/go-awl-bridge/models"
)

func (h *Handler) listZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.services.GatewayService.ListZones(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listZones", err)
		return
	}

	_, _ = utils.WriteJSON(w, zones, http.StatusOK)
}

func (h *Handler) listGateways(w http.ResponseWriter, r *http.Request) {
	var (
		data any
		err  error
	)
	if r.URL.Query().Has("raw") {
		data, err = h.services.GatewayService.RawLoginData(r.Context())
	} else {
		data, err = h.services.GatewayService.ListGateways(r.Context())
	}
	if err != nil {
		h.writeError(w, r, "*Handler.listGateways", err)
		return
	}

	_, _ = utils.WriteJSON(w, data, http.StatusOK)
}

func (h *Handler) readGateway(w http.ResponseWriter, r *http.Request) {
	reading, err := h.services.GatewayService.ReadGateway(r.Context(), chi.URLParam(r, "gwid"))
	if err != nil {
		h.writeError(w, r, "*Handler.readGateway", err)
		return
	}

	_, _ = utils.WriteJSON(w, reading, http.StatusOK)
}

func (h *Handler) listGatewayZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.services.GatewayService.ListGatewayZones(r.Context(), chi.URLParam(r, "gwid"))
	if err != nil {
		h.writeError(w, r, "*Handler.listGatewayZones", err)
		return
	}

	_, _ = utils.WriteJSON(w, zones, http.StatusOK)
}

func (h *Handler) getZone(w http.ResponseWriter, r *http.Request) {
	gwid := chi.URLParam(r, "gwid")
	zoneID, err := zoneIDParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getZone", err)
		return
	}

	zone, err := h.services.GatewayService.GetZone(r.Context(), gwid, zoneID)
	if err != nil {
		h.writeError(w, r, "*Handler.getZone", fmt.Errorf("the gateway %s does not have a zone %d: %w", gwid, zoneID, err))
		return
	}

	_, _ = utils.WriteJSON(w, zone, http.StatusOK)
}

func (h *Handler) readZoneDetails(w http.ResponseWriter, r *http.Request) {
	gwid := chi.URLParam(r, "gwid")
	zoneID, err := zoneIDParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.readZoneDetails", err)
		return
	}

	details, err := h.services.GatewayService.ReadZoneDetails(r.Context(), gwid, zoneID)
	if err != nil {
		h.writeError(w, r, "*Handler.readZoneDetails", err)
		return
	}

	_, _ = utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	req := models.HistoryRequest{GWID: chi.URLParam(r, "gwid")}

	query := r.URL.Query()
	if since := query.Get("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			h.writeError(w, r, "*Handler.history", ErrInvalidSince)
			return
		}
		req.Since = t
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil || n == 0 {
			h.writeError(w, r, "*Handler.history", ErrInvalidLimit)
			return
		}
		req.Limit = n
	}

	records, err := h.services.RecorderService.History(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "*Handler.history", err)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

// writeError logs err with the request-scoped logger and answers with the
// status mapped from it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Send()
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}

func zoneIDParam(r *http.Request) (int, error) {
	zoneID, err := strconv.Atoi(chi.URLParam(r, "zoneid"))
	if err != nil {
		return 0, errInvalidZoneID
	}
	return zoneID, nil
}
