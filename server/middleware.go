package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/packarr/packarr/pkg/logger"
	"go.uber.org/zap"
)

type contextKey string

const ownerKey contextKey = "owner"

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(zap.String("request_path", r.URL.Path)).With(zap.String("id", uuid.New().String()))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}

// OwnerMiddleware resolves the calling user from the X-User-ID header.
// Identity issuance happens upstream; requests without one are rejected.
func (s Server) OwnerMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := r.Header.Get("X-User-ID")
			if owner == "" {
				http.Error(w, "missing X-User-ID header", http.StatusUnauthorized)
				return
			}

			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
		})
	}
}

func ownerFromCtx(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey).(string)
	return owner
}
