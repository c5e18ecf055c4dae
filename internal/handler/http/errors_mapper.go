package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
)

var errorStatusMap = []struct {
	target error
	status int
}{
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrCharacterNotFound, http.StatusNotFound},
	{service.ErrNoSelection, http.StatusNotFound},

	{service.ErrAccountBusy, http.StatusConflict},
	{service.ErrCharacterBusy, http.StatusConflict},
	{service.ErrAccountDisabled, http.StatusConflict},
	{service.ErrAccountNotReady, http.StatusConflict},
	{service.ErrCharacterNotSelectable, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{store.ErrCharacterOwnedElsewhere, http.StatusConflict},

	{adapter.ErrCookieExpired, http.StatusBadGateway},
	{adapter.ErrDataNotPublic, http.StatusBadGateway},
	{adapter.ErrVerificationRequired, http.StatusBadGateway},
	{adapter.ErrAPI, http.StatusBadGateway},
	{adapter.ErrBadStatus, http.StatusBadGateway},
	{adapter.ErrMalformedResponse, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
