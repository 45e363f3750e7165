package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/packarr/packarr/pkg/manager"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *error `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the http surface such as loggers, the season manager, storage, and the progress hub.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.SeasonManager
	store      storage.Storage
	hub        *progress.Hub
	bulk       *manager.BulkEngine
	validate   *validator.Validate
}

// New creates a new api server
func New(logger *zap.SugaredLogger, seasonManager *manager.SeasonManager, store storage.Storage, hub *progress.Hub, bulk *manager.BulkEngine) Server {
	return Server{
		baseLogger: logger,
		manager:    seasonManager,
		store:      store,
		hub:        hub,
		bulk:       bulk,
		validate:   validator.New(),
	}
}

func writeGenericResponse(w http.ResponseWriter, status int) error {
	return writeResponse(w, status, GenericResponse{})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: &err,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	api.Use(s.OwnerMiddleware())

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/events", s.Events()).Methods(http.MethodGet)

	v1.HandleFunc("/instances", s.ListInstances()).Methods(http.MethodGet)
	v1.HandleFunc("/instances", s.CreateInstance()).Methods(http.MethodPost)
	v1.HandleFunc("/instances/{id}", s.UpdateInstance()).Methods(http.MethodPut)
	v1.HandleFunc("/instances/{id}", s.DeleteInstance()).Methods(http.MethodDelete)
	v1.HandleFunc("/instances/{id}/test", s.TestInstance()).Methods(http.MethodPost)

	v1.HandleFunc("/shows", s.ListShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{id}", s.GetShow()).Methods(http.MethodGet)

	v1.HandleFunc("/settings", s.GetSettings()).Methods(http.MethodGet)
	v1.HandleFunc("/settings", s.UpdateSettings()).Methods(http.MethodPut)

	v1.HandleFunc("/activity", s.ListActivity()).Methods(http.MethodGet)
	v1.HandleFunc("/activity", s.PurgeActivity()).Methods(http.MethodDelete)

	v1.HandleFunc("/notifications", s.ListNotifications()).Methods(http.MethodGet)
	v1.HandleFunc("/notifications", s.ClearNotifications()).Methods(http.MethodDelete)
	v1.HandleFunc("/notifications/unread-count", s.UnreadNotificationCount()).Methods(http.MethodGet)
	v1.HandleFunc("/notifications/read-all", s.ReadAllNotifications()).Methods(http.MethodPut)
	v1.HandleFunc("/notifications/{id}", s.UpdateNotification()).Methods(http.MethodPut)
	v1.HandleFunc("/notifications/{id}", s.DeleteNotification()).Methods(http.MethodDelete)

	v1.HandleFunc("/seasonit", s.SeasonIt()).Methods(http.MethodPost)
	v1.HandleFunc("/seasonit/bulk", s.BulkSeasonIt()).Methods(http.MethodPost)

	v1.HandleFunc("/operations", s.ListOperations()).Methods(http.MethodGet)
	v1.HandleFunc("/operations/{id}", s.OperationStatus()).Methods(http.MethodGet)
	v1.HandleFunc("/operations/{id}/cancel", s.CancelOperation()).Methods(http.MethodPost)

	v1.HandleFunc("/search/packs", s.SearchPacks()).Methods(http.MethodPost)
	v1.HandleFunc("/release/download", s.DownloadRelease()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Events streams the caller's progress events over server-sent events
// until the connection goes away.
func (s Server) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		owner := ownerFromCtx(r.Context())

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		events, cancel := s.hub.Subscribe(owner)
		defer cancel()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}

				b, err := json.Marshal(event)
				if err != nil {
					continue
				}

				fmt.Fprintf(w, "data: %s\n\n", b)
				flusher.Flush()

			case <-r.Context().Done():
				return
			}
		}
	}
}
