package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/manager"
	"github.com/packarr/packarr/pkg/pagination"
	"github.com/packarr/packarr/pkg/storage"
	"go.uber.org/zap"
)

type showPage struct {
	Items []manager.Show  `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// ListShows returns an instance's library so the caller can pick targets
// for the season operations. Filtering and paging happen here, the
// downstream service always returns the full library.
func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		instanceID, err := queryInstanceID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		shows, err := s.manager.ListShows(r.Context(), owner, instanceID, r.URL.Query().Get("search"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to list shows", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		total := len(shows)
		offset, limit := params.CalculateOffsetLimit()
		if limit > 0 {
			if offset > total {
				offset = total
			}
			end := offset + limit
			if end > total {
				end = total
			}
			shows = shows[offset:end]
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: showPage{
			Items: shows,
			Meta:  params.BuildMeta(total),
		}})
	}
}

// GetShow returns one library entry with its seasons
func (s Server) GetShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		instanceID, err := queryInstanceID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		showID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid show id"))
			return
		}

		show, err := s.manager.GetShow(r.Context(), owner, instanceID, showID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to get show", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: show})
	}
}

func queryInstanceID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("instanceId")
	if raw == "" {
		return 0, fmt.Errorf("instanceId parameter is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid instanceId parameter: %q", raw)
	}

	return id, nil
}
