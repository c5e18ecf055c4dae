package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrAccountNotFound, http.StatusNotFound},
		{fmt.Errorf("error getting character: %w", store.ErrCharacterNotFound), http.StatusNotFound},
		{service.ErrNoSelection, http.StatusNotFound},
		{service.ErrAccountBusy, http.StatusConflict},
		{fmt.Errorf("%w: account x: ready -> ready", service.ErrInvalidTransition), http.StatusConflict},
		{adapter.ErrVerificationRequired, http.StatusBadGateway},
		{errors.Join(adapter.ErrCookieExpired, errors.New("save failed")), http.StatusBadGateway},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
