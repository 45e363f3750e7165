package server

import (
	"encoding/json"
	"net/http"

	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

type settingsRequest struct {
	DisableSeasonPackCheck bool `json:"disableSeasonPackCheck"`
	SkipEpisodeDeletion    bool `json:"skipEpisodeDeletion"`
}

// GetSettings returns the caller's settings, or defaults when none are stored
func (s Server) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		settings, err := s.store.GetUserSettings(r.Context(), owner)
		if err != nil {
			log.Error("failed to get settings", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: settings})
	}
}

func (s Server) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req settingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		settings := model.UserSettings{
			OwnerID:                owner,
			DisableSeasonPackCheck: req.DisableSeasonPackCheck,
			SkipEpisodeDeletion:    req.SkipEpisodeDeletion,
		}

		if err := s.store.UpsertUserSettings(r.Context(), settings); err != nil {
			log.Error("failed to update settings", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: settings})
	}
}
