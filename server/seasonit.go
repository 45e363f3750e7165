package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/manager"
	"go.uber.org/zap"
)

type seasonItRequest struct {
	ShowID       int64  `json:"showId" validate:"required"`
	Title        string `json:"title" validate:"required"`
	InstanceID   int64  `json:"instanceId" validate:"required"`
	SeasonNumber *int32 `json:"seasonNumber"`
	PosterURL    string `json:"posterUrl"`
}

func (r seasonItRequest) target() manager.ShowTarget {
	return manager.ShowTarget{
		ShowID:     r.ShowID,
		Title:      r.Title,
		InstanceID: r.InstanceID,
		PosterURL:  r.PosterURL,
	}
}

// SeasonIt starts a run for one show. With a season number only that season
// runs; without one every actionable season does. The run outlives the
// request, reporting through the event stream.
func (s Server) SeasonIt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req seasonItRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		runCtx := logger.WithCtx(context.Background(), log)
		go func() {
			if req.SeasonNumber != nil {
				if _, err := s.manager.RunSeason(runCtx, owner, req.target(), *req.SeasonNumber); err != nil {
					log.Warn("season run failed", zap.Error(err))
				}
				return
			}

			if _, err := s.manager.RunAllSeasons(runCtx, owner, req.target()); err != nil {
				log.Warn("season run failed", zap.Error(err))
			}
		}()

		writeResponse(w, http.StatusAccepted, GenericResponse{Response: "accepted"})
	}
}

type bulkRequest struct {
	Items []seasonItRequest `json:"items" validate:"required,min=1,dive"`
}

// BulkSeasonIt submits a bulk job and starts executing it in the background
func (s Server) BulkSeasonIt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req bulkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		items := make([]manager.BulkItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, manager.BulkItem{
				ShowID:       item.ShowID,
				Title:        item.Title,
				InstanceID:   item.InstanceID,
				SeasonNumber: item.SeasonNumber,
				PosterURL:    item.PosterURL,
			})
		}

		jobID := s.bulk.Submit(owner, "season_it", items)

		runCtx := logger.WithCtx(context.Background(), log)
		go func() {
			if _, err := s.bulk.Execute(runCtx, jobID, s.manager.SeasonWorker(owner)); err != nil {
				log.Warn("bulk job failed", zap.String("job", jobID), zap.Error(err))
			}
		}()

		writeResponse(w, http.StatusAccepted, GenericResponse{Response: map[string]string{"jobId": jobID}})
	}
}

func (s Server) ListOperations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := ownerFromCtx(r.Context())
		writeResponse(w, http.StatusOK, GenericResponse{Response: s.bulk.ListForOwner(owner)})
	}
}

func (s Server) OperationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := ownerFromCtx(r.Context())

		view, err := s.bulk.Status(owner, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, manager.ErrJobNotFound) {
				http.Error(w, "operation not found", http.StatusNotFound)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: view})
	}
}

// CancelOperation requests cooperative cancellation of a bulk job.
// A job the caller cannot see cancels the same as an unknown one.
func (s Server) CancelOperation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := ownerFromCtx(r.Context())
		jobID := mux.Vars(r)["id"]

		if _, err := s.bulk.Status(owner, jobID); err != nil {
			http.Error(w, "operation not found", http.StatusNotFound)
			return
		}

		cancelled := s.bulk.Cancel(jobID)
		status := http.StatusOK
		if !cancelled {
			status = http.StatusConflict
		}

		writeResponse(w, status, GenericResponse{Response: map[string]bool{"cancelled": cancelled}})
	}
}

type searchPacksRequest struct {
	ShowID       int64  `json:"showId" validate:"required"`
	Title        string `json:"title" validate:"required"`
	InstanceID   int64  `json:"instanceId" validate:"required"`
	SeasonNumber int32  `json:"seasonNumber" validate:"required"`
	PosterURL    string `json:"posterUrl"`
}

// SearchPacks runs an interactive season pack search bound to this request's
// connection. A caller that goes away cancels the search.
func (s Server) SearchPacks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req searchPacksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		show := manager.ShowTarget{
			ShowID:     req.ShowID,
			Title:      req.Title,
			InstanceID: req.InstanceID,
			PosterURL:  req.PosterURL,
		}

		alive := func() bool {
			select {
			case <-r.Context().Done():
				return false
			default:
				return true
			}
		}

		candidates, err := s.manager.SearchSeasonPacksInteractive(r.Context(), owner, show, req.SeasonNumber, alive)
		if err != nil {
			if errors.Is(err, manager.ErrClientDisconnected) || errors.Is(err, context.Canceled) {
				// nobody is listening anymore
				return
			}
			log.Error("interactive search failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: candidates})
	}
}

type downloadRequest struct {
	InstanceID int64  `json:"instanceId" validate:"required"`
	GUID       string `json:"guid" validate:"required"`
	IndexerID  int32  `json:"indexerId" validate:"required"`
}

// DownloadRelease grabs one explicitly chosen release
func (s Server) DownloadRelease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req downloadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.manager.DownloadRelease(r.Context(), owner, req.InstanceID, req.GUID, req.IndexerID); err != nil {
			log.Error("failed to download release", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}
