// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	// AllGateways selects the zones of every gateway in ListGatewayZones.
	AllGateways = "*"

	readingCacheSize = 64
)

type gatewayService struct {
	session SessionService

	cache *expirable.LRU[string, models.Reading]
	group singleflight.Group

	logger *logger.Logger
}

// NewGatewayService constructs a [GatewayService] reading through session.
// Readings are cached for cfg.CacheTTL; zero disables the cache.
func NewGatewayService(session SessionService, cfg config.AWL, log *logger.Logger) GatewayService {
	s := &gatewayService{
		session: session,
		logger:  log,
	}
	if cfg.CacheTTL > 0 {
		s.cache = expirable.NewLRU[string, models.Reading](readingCacheSize, nil, cfg.CacheTTL)
	}
	return s
}

// ListGateways implements [GatewayService].
func (s *gatewayService) ListGateways(ctx context.Context) ([]models.GatewaySummary, error) {
	data, ok := s.session.LoginData()
	if !ok {
		return nil, ErrNotConnected
	}

	log := logger.FromContextOr(ctx, s.logger)

	gateways := make([]models.GatewaySummary, 0)
	for _, location := range data.Locations {
		for _, gateway := range location.Gateways {
			if gateway.GWID == "" {
				log.Error().Str("func", "*gatewayService.ListGateways").Str("location", location.Description).Msg("couldn't get gwid")
				continue
			}
			gateways = append(gateways, models.GatewaySummary{
				Location:   location.Description,
				GWID:       gateway.GWID,
				SystemName: gateway.Description,
			})
		}
	}

	return gateways, nil
}

// RawLoginData implements [GatewayService].
func (s *gatewayService) RawLoginData(_ context.Context) (map[string]any, error) {
	data, ok := s.session.LoginData()
	if !ok {
		return nil, ErrNotConnected
	}
	if data.Raw == nil {
		return map[string]any{}, nil
	}
	return data.Raw, nil
}

// ListZones implements [GatewayService]. Zones keep the location and gateway
// order of the login data and are sorted by zone id within a gateway.
func (s *gatewayService) ListZones(ctx context.Context) ([]models.Zone, error) {
	data, ok := s.session.LoginData()
	if !ok {
		return nil, ErrNotConnected
	}

	log := logger.FromContextOr(ctx, s.logger)

	zones := make([]models.Zone, 0)
	for _, location := range data.Locations {
		for _, gateway := range location.Gateways {
			gatewayZones := make([]models.Zone, 0, len(gateway.ThermostatNames))

			for key, name := range gateway.ThermostatNames {
				if name == nil {
					continue
				}
				if gateway.GWID == "" {
					log.Error().Str("func", "*gatewayService.ListZones").Msg("couldn't get gwid")
					continue
				}

				zoneID, err := parseZoneKey(key)
				if err != nil {
					log.Error().Str("func", "*gatewayService.ListZones").Str("key", key).Msg("couldn't convert zone key to int")
					continue
				}

				gatewayZones = append(gatewayZones, models.Zone{
					Location:   location.Description,
					GWID:       gateway.GWID,
					SystemName: gateway.Description,
					ZoneID:     zoneID,
					ZoneName:   *name,
				})
			}

			sort.Slice(gatewayZones, func(i, j int) bool {
				return gatewayZones[i].ZoneID < gatewayZones[j].ZoneID
			})
			zones = append(zones, gatewayZones...)
		}
	}

	return zones, nil
}

// ListGatewayZones implements [GatewayService].
func (s *gatewayService) ListGatewayZones(ctx context.Context, gwid string) ([]models.Zone, error) {
	zones, err := s.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	if gwid == AllGateways {
		return zones, nil
	}

	filtered := make([]models.Zone, 0, len(zones))
	for _, zone := range zones {
		if zone.GWID == gwid {
			filtered = append(filtered, zone)
		}
	}
	return filtered, nil
}

// GetZone implements [GatewayService].
func (s *gatewayService) GetZone(ctx context.Context, gwid string, zoneID int) (models.Zone, error) {
	zones, err := s.ListGatewayZones(ctx, gwid)
	if err != nil {
		return models.Zone{}, err
	}

	var found []models.Zone
	for _, zone := range zones {
		if zone.ZoneID == zoneID {
			found = append(found, zone)
		}
	}

	switch len(found) {
	case 0:
		return models.Zone{}, ErrZoneNotFound
	case 1:
		return found[0], nil
	default:
		return models.Zone{}, ErrAmbiguousZone
	}
}

// ReadGateway implements [GatewayService]. Concurrent reads of the same
// gateway share one AWL transaction.
func (s *gatewayService) ReadGateway(ctx context.Context, gwid string) (models.Reading, error) {
	if s.cache != nil {
		if reading, ok := s.cache.Get(gwid); ok {
			return reading, nil
		}
	}

	v, err, shared := s.group.Do(gwid, func() (any, error) {
		start := time.Now()
		reading, err := s.session.Read(ctx, gwid)
		if err != nil {
			return nil, err
		}
		logger.FromContextOr(ctx, s.logger).Debug().
			Str("func", "*gatewayService.ReadGateway").
			Str("gwid", gwid).
			Dur("took", time.Since(start)).
			Msg("read gateway")

		if s.cache != nil {
			s.cache.Add(gwid, reading)
		}
		return reading, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.FromContextOr(ctx, s.logger).Debug().Str("func", "*gatewayService.ReadGateway").Str("gwid", gwid).Msg("shared read result")
	}

	return v.(models.Reading), nil
}

// ReadZoneDetails implements [GatewayService].
func (s *gatewayService) ReadZoneDetails(ctx context.Context, gwid string, zoneID int) (models.ZoneDetails, error) {
	reading, err := s.ReadGateway(ctx, gwid)
	if err != nil {
		return nil, err
	}

	details, ok := reading.Zone(zoneID)
	if !ok {
		return nil, ErrZoneNotFound
	}
	return details, nil
}

// parseZoneKey converts a tstat_names key such as "z3" to its zone id. The
// first character is the zone marker and is not checked.
func parseZoneKey(key string) (int, error) {
	if key == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(strings.TrimSpace(key[1:]))
}
