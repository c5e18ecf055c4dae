package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
)

// withRecovery turns a handler panic into a logged 500. The stack goes to
// the request logger instead of stderr, which the TUI owns.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Err(fmt.Errorf("%w: %v", errPanic, rec)).
				Str("func", "*Handler.withRecovery").
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
