package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-awl-bridge/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldCmd targets the command name of a relay request.
	FieldCmd = "cmd"

	// FieldAWLID targets the gateway id of a relay request. It is only
	// required by commands registered as gateway commands.
	FieldAWLID = "awlid"

	// FieldGWID targets the gateway id of a history request.
	FieldGWID = "gwid"

	// FieldSince targets the lower time bound of a history request.
	FieldSince = "since"
)

// RequestValidator implements [Validator] for [models.RelayRequest] and
// [models.HistoryRequest], by value or by pointer.
type RequestValidator struct {
	// commands maps an allowed relay command to whether it needs an awlid.
	commands map[string]bool
	now      func() time.Time
}

// NewRequestValidator constructs a RequestValidator. commands lists the relay
// commands that may be executed; the value reports whether the command
// addresses a gateway and therefore needs an awlid.
func NewRequestValidator(commands map[string]bool) *RequestValidator {
	return &RequestValidator{commands: commands, now: time.Now}
}

// Validate dispatches validation to the type-specific method. Without fields
// every field of the request is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RelayRequest:
		return v.validateRelayRequest(ctx, value, fields...)
	case *models.RelayRequest:
		return v.validateRelayRequest(ctx, *value, fields...)

	case models.HistoryRequest:
		return v.validateHistoryRequest(ctx, value, fields...)
	case *models.HistoryRequest:
		return v.validateHistoryRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRelayRequest(_ context.Context, req models.RelayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCmd, FieldAWLID}
	}

	for _, f := range fields {
		switch f {
		case FieldCmd:
			if _, ok := v.commands[req.Cmd]; !ok {
				return fmt.Errorf("%w: %q", ErrCommandNotAllowed, req.Cmd)
			}
		case FieldAWLID:
			if v.commands[req.Cmd] && req.AWLID == "" {
				return ErrNoGatewayID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateHistoryRequest(_ context.Context, req models.HistoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGWID, FieldSince}
	}

	for _, f := range fields {
		switch f {
		case FieldGWID:
			if req.GWID == "" {
				return ErrNoGatewayID
			}
		case FieldSince:
			if req.Since.After(v.now()) {
				return ErrSinceInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
