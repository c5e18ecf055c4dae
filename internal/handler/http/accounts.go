package http

import (
	"net/http"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		h.writeServiceError(w, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) refreshAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, "accountID")

	account, err := h.services.AccountService.Refresh(r.Context(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refreshAccount").Str("account_id", accountID).Msg("error refreshing account")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

// writeServiceError maps err onto a status code and writes a JSON error
// with a message fit for users.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := service.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	utils.WriteError(w, msg, status)
}
