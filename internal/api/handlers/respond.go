package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/earenas/taskboard/internal/apperr"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		log.Error().Err(err).Msg("Request failed")
	}
	apperr.WriteHTTP(w, err)
}
