package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/go-chi/chi/v5"
)

// notesResponse is a cached note plus values estimated at response time.
type notesResponse struct {
	models.RealTimeNote

	EstimatedResin      int       `json:"estimated_resin"`
	ResinFullAt         time.Time `json:"resin_full_at"`
	HomeCoinFullAt      time.Time `json:"home_coin_full_at"`
	FinishedExpeditions int       `json:"finished_expeditions"`
}

func newNotesResponse(note models.RealTimeNote, now time.Time) notesResponse {
	return notesResponse{
		RealTimeNote:        note,
		EstimatedResin:      note.ResinAt(now),
		ResinFullAt:         note.ResinFullAt(),
		HomeCoinFullAt:      note.HomeCoinFullAt(),
		FinishedExpeditions: note.FinishedExpeditions(now),
	}
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	characters, err := h.services.AccountService.Characters(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCharacters").Msg("error listing characters")
		h.writeServiceError(w, err)
		return
	}
	if characters == nil {
		characters = []models.AccountCharacter{}
	}

	utils.WriteJSON(w, characters, http.StatusOK)
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	note, ok := h.services.NotesService.Latest(uid)
	if !ok {
		utils.WriteError(w, "no notes fetched for this character yet", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, newNotesResponse(note, h.now()), http.StatusOK)
}

func (h *Handler) refreshNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	uid := chi.URLParam(r, "uid")

	note, err := h.services.NotesService.Refresh(r.Context(), uid)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refreshNotes").Str("uid", uid).Msg("error refreshing notes")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, newNotesResponse(note, h.now()), http.StatusOK)
}
