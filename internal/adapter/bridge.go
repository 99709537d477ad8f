package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
	"github.com/MKhiriev/go-awl-bridge/models"
	"github.com/go-resty/resty/v2"
)

type httpBridgeAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPBridgeAdapter constructs the REST implementation of [BridgeAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPBridgeAdapter(cfg config.ClientAdapter, log *logger.Logger) (BridgeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
	)

	return &httpBridgeAdapter{client: client, token: strings.TrimSpace(cfg.Token), logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListZones implements [BridgeAdapter] with GET /zones.
func (h *httpBridgeAdapter) ListZones(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	if err := h.getJSON(ctx, "/zones", nil, &zones); err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

// ListGateways implements [BridgeAdapter] with GET /gateways.
func (h *httpBridgeAdapter) ListGateways(ctx context.Context) ([]models.GatewaySummary, error) {
	var gateways []models.GatewaySummary
	if err := h.getJSON(ctx, "/gateways", nil, &gateways); err != nil {
		return nil, fmt.Errorf("list gateways: %w", err)
	}
	return gateways, nil
}

// ReadGateway implements [BridgeAdapter] with GET /gateways/{gwid}.
func (h *httpBridgeAdapter) ReadGateway(ctx context.Context, gwid string) (models.Reading, error) {
	var reading models.Reading
	if err := h.getJSON(ctx, "/gateways/"+url.PathEscape(gwid), nil, &reading); err != nil {
		return nil, fmt.Errorf("read gateway %s: %w", gwid, err)
	}
	return reading, nil
}

// ZoneDetails implements [BridgeAdapter] with
// GET /gateways/{gwid}/zones/{zoneid}/details.
func (h *httpBridgeAdapter) ZoneDetails(ctx context.Context, gwid string, zoneID int) (models.ZoneDetails, error) {
	path := fmt.Sprintf("/gateways/%s/zones/%d/details", url.PathEscape(gwid), zoneID)

	var details models.ZoneDetails
	if err := h.getJSON(ctx, path, nil, &details); err != nil {
		return nil, fmt.Errorf("zone %d details: %w", zoneID, err)
	}
	return details, nil
}

// History implements [BridgeAdapter] with GET /gateways/{gwid}/history.
func (h *httpBridgeAdapter) History(ctx context.Context, gwid string, since time.Time, limit uint64) ([]models.ReadingRecord, error) {
	query := map[string]string{}
	if !since.IsZero() {
		query["since"] = since.UTC().Format(time.RFC3339)
	}
	if limit > 0 {
		query["limit"] = strconv.FormatUint(limit, 10)
	}

	var records []models.ReadingRecord
	if err := h.getJSON(ctx, "/gateways/"+url.PathEscape(gwid)+"/history", query, &records); err != nil {
		return nil, fmt.Errorf("history of %s: %w", gwid, err)
	}
	return records, nil
}

// Health implements [BridgeAdapter] with GET /api/health. The body of a 503
// answer still carries the status.
func (h *httpBridgeAdapter) Health(ctx context.Context) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := h.request(ctx).Get("/api/health")
	if err != nil {
		return status, fmt.Errorf("health request: %w", err)
	}

	mapped := mapHTTPError(resp)
	if mapped != nil && !errors.Is(mapped, ErrServiceUnavailable) {
		return status, mapped
	}
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return status, fmt.Errorf("decode health response: %w", err)
	}

	return status, mapped
}

// Version implements [BridgeAdapter] with GET /api/version/.
func (h *httpBridgeAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpBridgeAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	resp, err := h.request(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpBridgeAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
