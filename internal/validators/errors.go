package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCommandNotAllowed = errors.New("command is not allowed")
	ErrNoGatewayID       = errors.New("awlid is required")
	ErrSinceInFuture     = errors.New("since is in the future")
)
