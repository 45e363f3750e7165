package server

import (
	"net/http"

	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/pagination"
	"github.com/packarr/packarr/pkg/storage"
	"go.uber.org/zap"
)

type activityPage struct {
	Items []*storage.Activity `json:"items"`
	Meta  pagination.Meta     `json:"meta"`
}

// ListActivity returns the caller's activity log, newest first
func (s Server) ListActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		offset, limit := params.CalculateOffsetLimit()

		activities, err := s.store.ListActivities(r.Context(), owner, offset, limit)
		if err != nil {
			log.Error("failed to list activities", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		total, err := s.store.CountActivities(r.Context(), owner)
		if err != nil {
			log.Error("failed to count activities", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: activityPage{
			Items: activities,
			Meta:  params.BuildMeta(total),
		}})
	}
}

// PurgeActivity removes the caller's whole activity history
func (s Server) PurgeActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		if err := s.store.PurgeActivities(r.Context(), owner); err != nil {
			log.Error("failed to purge activities", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}
