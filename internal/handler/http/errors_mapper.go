package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-awl-bridge/internal/awl"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
	"github.com/MKhiriev/go-awl-bridge/internal/store"
	"github.com/MKhiriev/go-awl-bridge/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order; the first sentinel an error wraps
// decides the status.
var errorStatuses = []errorStatus{
	{ErrInvalidSince, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},
	{validators.ErrSinceInFuture, http.StatusBadRequest},
	{service.ErrNoGatewayID, http.StatusBadRequest},

	{errInvalidZoneID, http.StatusNotFound},
	{service.ErrZoneNotFound, http.StatusNotFound},
	{store.ErrStorageDisabled, http.StatusNotFound},
	{service.ErrAmbiguousZone, http.StatusInternalServerError},

	{awl.ErrTransactionTimeout, http.StatusGatewayTimeout},
	{awl.ErrTransactionCancelled, http.StatusServiceUnavailable},
	{awl.ErrTooManyTransactions, http.StatusServiceUnavailable},
	{service.ErrNotConnected, http.StatusGatewayTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var transactionErr *awl.TransactionError
	if errors.As(err, &transactionErr) {
		return http.StatusServiceUnavailable
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
