package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/pagination"
	"github.com/packarr/packarr/pkg/storage"
	"go.uber.org/zap"
)

type notificationPage struct {
	Items []*storage.Notification `json:"items"`
	Meta  pagination.Meta         `json:"meta"`
}

// ListNotifications returns the caller's notifications, newest first.
// With unreadOnly=true only the unread ones are returned.
func (s Server) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		unreadOnly := r.URL.Query().Get("unreadOnly") == "true"

		offset, limit := params.CalculateOffsetLimit()
		notifications, err := s.store.ListNotifications(r.Context(), owner, unreadOnly, offset, limit)
		if err != nil {
			log.Error("failed to list notifications", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		total, err := s.store.CountNotifications(r.Context(), owner, unreadOnly)
		if err != nil {
			log.Error("failed to count notifications", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: notificationPage{
			Items: notifications,
			Meta:  params.BuildMeta(total),
		}})
	}
}

// UnreadNotificationCount returns how many notifications the caller has not read yet
func (s Server) UnreadNotificationCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		count, err := s.store.CountNotifications(r.Context(), owner, true)
		if err != nil {
			log.Error("failed to count notifications", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: map[string]int{"count": count}})
	}
}

type notificationUpdateRequest struct {
	Read bool `json:"read"`
}

// UpdateNotification marks one notification read or unread
func (s Server) UpdateNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		id, err := notificationID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var req notificationUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.store.MarkNotificationRead(r.Context(), owner, id, req.Read); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to mark notification", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

// ReadAllNotifications marks every unread notification as read
func (s Server) ReadAllNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		if err := s.store.MarkAllNotificationsRead(r.Context(), owner); err != nil {
			log.Error("failed to mark all notifications", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

// DeleteNotification removes one notification
func (s Server) DeleteNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		id, err := notificationID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.store.DeleteNotification(r.Context(), owner, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Error("failed to delete notification", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

// ClearNotifications removes the caller's whole notification list
func (s Server) ClearNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		owner := ownerFromCtx(r.Context())

		if err := s.store.PurgeNotifications(r.Context(), owner); err != nil {
			log.Error("failed to clear notifications", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

func notificationID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid notification id")
	}
	return id, nil
}
