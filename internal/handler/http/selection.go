package http

import (
	"net/http"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ch, err := h.services.SelectionService.Selected(r.Context())
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getSelection").Msg("no selection")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, ch, http.StatusOK)
}

func (h *Handler) selectCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	uid := chi.URLParam(r, "uid")

	ch, err := h.services.SelectionService.Select(r.Context(), uid)
	if err != nil {
		log.Err(err).Str("func", "*Handler.selectCharacter").Str("uid", uid).Msg("error selecting character")
		h.writeServiceError(w, err)
		return
	}
	h.services.PollJob.Trigger()

	utils.WriteJSON(w, ch, http.StatusOK)
}
