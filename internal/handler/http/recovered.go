package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/models"
)

func (h *Handler) listRecovered(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.RecoveredService.ListRecoveredByOwner(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listRecovered").Msg("error listing recovery records")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createRecovered(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.RecoveredItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.createRecovered").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the recovering party is whoever holds the session
	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	item.UserEmail = email

	created, err := h.services.RecoveredService.CreateRecoveredItem(r.Context(), item)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.createRecovered").Msg("error creating recovery record")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.InsertResult{InsertedID: created.RecoveredID}, http.StatusOK)
}
