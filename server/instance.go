package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

type instanceRequest struct {
	Name   string `json:"name" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
	APIKey string `json:"apiKey" validate:"required"`
}

// CreateInstance registers a Sonarr connection after verifying it answers
func (s Server) CreateInstance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		var req instanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		instance := model.SonarrInstance{
			OwnerID: owner,
			Name:    req.Name,
			URL:     req.URL,
			APIKey:  req.APIKey,
		}

		if err := s.manager.TestInstanceConnection(r.Context(), &instance); err != nil {
			log.Warn("instance connection test failed", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		id, err := s.store.CreateInstance(r.Context(), instance)
		if err != nil {
			log.Error("failed to create instance", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		instance.ID = int32(id)
		writeResponse(w, http.StatusCreated, GenericResponse{Response: instance})
	}
}

func (s Server) ListInstances() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		instances, err := s.store.ListInstances(r.Context(), owner)
		if err != nil {
			log.Error("failed to list instances", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: instances})
	}
}

// UpdateInstance replaces an instance's settings. A changed url or api key
// is re-tested before it is saved.
func (s Server) UpdateInstance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		id, err := instanceID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var req instanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		existing, err := s.store.GetInstance(r.Context(), owner, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		instance := model.SonarrInstance{
			ID:      int32(id),
			OwnerID: owner,
			Name:    req.Name,
			URL:     req.URL,
			APIKey:  req.APIKey,
		}

		if existing.URL != req.URL || existing.APIKey != req.APIKey {
			if err := s.manager.TestInstanceConnection(r.Context(), &instance); err != nil {
				log.Warn("instance connection test failed", zap.Error(err))
				writeErrorResponse(w, http.StatusBadGateway, err)
				return
			}
		}

		if err := s.store.UpdateInstance(r.Context(), owner, instance); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update instance", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: instance})
	}
}

func (s Server) DeleteInstance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		id, err := instanceID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := s.store.DeleteInstance(r.Context(), owner, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete instance", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

// TestInstance checks that a stored instance still answers
func (s Server) TestInstance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := ownerFromCtx(r.Context())

		id, err := instanceID(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		instance, err := s.store.GetInstance(r.Context(), owner, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		if err := s.manager.TestInstanceConnection(r.Context(), instance); err != nil {
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

func instanceID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
