// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-awl-bridge/internal/awl"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/validators"
	"github.com/MKhiriev/go-awl-bridge/models"
)

// CmdGetLoginData returns the login data of the shared session to a relay
// client.
const CmdGetLoginData = "getlogindata"

// relayCommands maps the relayed commands to whether they address a gateway.
var relayCommands = map[string]bool{
	awl.CmdRead:     true,
	CmdGetLoginData: false,
}

type relayService struct {
	session   SessionService
	gateways  GatewayService
	validator validators.Validator

	logger *logger.Logger
}

// NewRelayService constructs a [RelayService]. Only read-only commands are
// relayed: "read" goes through the cached gateway reads and
// "getlogindata" is answered from the current login data.
func NewRelayService(session SessionService, gateways GatewayService, log *logger.Logger) RelayService {
	return &relayService{
		session:   session,
		gateways:  gateways,
		validator: validators.NewRequestValidator(relayCommands),
		logger:    log,
	}
}

// Execute implements [RelayService]. The response always carries the
// client's tid and cmd; failures are reported in Err.
func (s *relayService) Execute(ctx context.Context, req models.RelayRequest) models.RelayResponse {
	resp := models.RelayResponse{TID: req.TID, Cmd: req.Cmd}

	data, err := s.execute(ctx, req)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Debug().Err(err).
			Str("func", "*relayService.Execute").
			Str("cmd", req.Cmd).
			Int("tid", req.TID).
			Msg("relay command failed")
		resp.Err = err.Error()
		return resp
	}

	resp.Data = data
	return resp
}

func (s *relayService) execute(ctx context.Context, req models.RelayRequest) (json.RawMessage, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	switch req.Cmd {
	case awl.CmdRead:
		reading, err := s.gateways.ReadGateway(ctx, req.AWLID)
		if err != nil {
			return nil, err
		}
		// cached readings are shared, echo the tid on a copy
		out := maps.Clone(reading)
		out["tid"] = req.TID
		return json.Marshal(out)

	case CmdGetLoginData:
		data, ok := s.session.LoginData()
		if !ok {
			return nil, ErrNotConnected
		}
		return json.Marshal(data.Raw)

	default:
		return nil, fmt.Errorf("%w: %q", validators.ErrCommandNotAllowed, req.Cmd)
	}
}
