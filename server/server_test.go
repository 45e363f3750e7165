package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/packarr/packarr/config"
	"github.com/packarr/packarr/pkg/cache"
	"github.com/packarr/packarr/pkg/manager"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/sonarr"
	sonarrMocks "github.com/packarr/packarr/pkg/sonarr/mocks"
	"github.com/packarr/packarr/pkg/storage"
	storeMocks "github.com/packarr/packarr/pkg/storage/mocks"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (Server, *storeMocks.MockStorage, *sonarrMocks.MockClientInterface, *progress.Hub) {
	ctrl := gomock.NewController(t)
	store := storeMocks.NewMockStorage(ctrl)
	client := sonarrMocks.NewMockClientInterface(ctrl)
	hub := progress.NewHub()

	factory := func(*model.SonarrInstance) (sonarr.ClientInterface, error) {
		return client, nil
	}

	mgr := manager.New(store, hub, factory, config.Manager{
		SeasonPacing:           time.Millisecond,
		DisconnectPollInterval: time.Millisecond * 5,
	})
	bulk := manager.NewBulkEngine(cache.New[string, *manager.BulkJob](), hub)

	return New(zap.NewNop().Sugar(), mgr, store, hub, bulk), store, client, hub
}

func withOwner(r *http.Request, owner string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ownerKey, owner))
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_OwnerMiddleware(t *testing.T) {
	s := Server{baseLogger: zap.NewNop().Sugar()}

	var seenOwner string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenOwner = ownerFromCtx(r.Context())
	})

	handler := s.OwnerMiddleware()(next)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/settings", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("header resolves the owner", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/settings", nil)
		req.Header.Set("X-User-ID", "user-1")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", seenOwner)
	})
}

func TestServer_CreateInstance(t *testing.T) {
	t.Run("creates after a connection test", func(t *testing.T) {
		s, store, client, _ := newTestServer(t)

		client.EXPECT().TestConnection(gomock.Any()).Return(nil)
		store.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		body, err := json.Marshal(instanceRequest{Name: "main", URL: "http://sonarr:8989", APIKey: "key"})
		require.NoError(t, err)

		req := withOwner(httptest.NewRequest("POST", "/api/v1/instances", bytes.NewReader(body)), "user-1")
		rr := httptest.NewRecorder()

		s.CreateInstance().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("rejects an invalid payload", func(t *testing.T) {
		s, _, _, _ := newTestServer(t)

		body, err := json.Marshal(instanceRequest{Name: "main", URL: "not a url"})
		require.NoError(t, err)

		req := withOwner(httptest.NewRequest("POST", "/api/v1/instances", bytes.NewReader(body)), "user-1")
		rr := httptest.NewRecorder()

		s.CreateInstance().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects an unreachable instance", func(t *testing.T) {
		s, _, client, _ := newTestServer(t)

		client.EXPECT().TestConnection(gomock.Any()).Return(sonarr.ErrDownstreamUnavailable)

		body, err := json.Marshal(instanceRequest{Name: "main", URL: "http://sonarr:8989", APIKey: "key"})
		require.NoError(t, err)

		req := withOwner(httptest.NewRequest("POST", "/api/v1/instances", bytes.NewReader(body)), "user-1")
		rr := httptest.NewRecorder()

		s.CreateInstance().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestServer_DeleteInstance(t *testing.T) {
	t.Run("unknown instance", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().DeleteInstance(gomock.Any(), "user-1", int64(9)).Return(storage.ErrNotFound)

		req := withOwner(httptest.NewRequest("DELETE", "/api/v1/instances/9", nil), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": "9"})
		rr := httptest.NewRecorder()

		s.DeleteInstance().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestServer_Settings(t *testing.T) {
	t.Run("get returns defaults", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().GetUserSettings(gomock.Any(), "user-1").Return(model.UserSettings{OwnerID: "user-1"}, nil)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/settings", nil), "user-1")
		rr := httptest.NewRecorder()

		s.GetSettings().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("put upserts", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().UpsertUserSettings(gomock.Any(), model.UserSettings{
			OwnerID:             "user-1",
			SkipEpisodeDeletion: true,
		}).Return(nil)

		body, err := json.Marshal(settingsRequest{SkipEpisodeDeletion: true})
		require.NoError(t, err)

		req := withOwner(httptest.NewRequest("PUT", "/api/v1/settings", bytes.NewReader(body)), "user-1")
		rr := httptest.NewRecorder()

		s.UpdateSettings().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestServer_ListActivity(t *testing.T) {
	s, store, _, _ := newTestServer(t)

	store.EXPECT().ListActivities(gomock.Any(), "user-1", 0, 10).Return([]*storage.Activity{
		{ActivityLog: model.ActivityLog{ID: 2, OwnerID: "user-1", ShowTitle: "Foo"}},
	}, nil)
	store.EXPECT().CountActivities(gomock.Any(), "user-1").Return(21, nil)

	req := withOwner(httptest.NewRequest("GET", "/api/v1/activity?page=1&pageSize=10", nil), "user-1")
	rr := httptest.NewRecorder()

	s.ListActivity().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response activityPage `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Len(t, response.Response.Items, 1)
	assert.Equal(t, 21, response.Response.Meta.TotalItems)
	assert.Equal(t, 3, response.Response.Meta.TotalPages)
}

func TestServer_Operations(t *testing.T) {
	t.Run("status of an unknown job", func(t *testing.T) {
		s, _, _, _ := newTestServer(t)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/operations/nope", nil), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})
		rr := httptest.NewRecorder()

		s.OperationStatus().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("cancel a pending job", func(t *testing.T) {
		s, _, _, _ := newTestServer(t)

		jobID := s.bulk.Submit("user-1", "season_it", []manager.BulkItem{{ShowID: 1, Title: "Foo", InstanceID: 1}})

		req := withOwner(httptest.NewRequest("POST", "/api/v1/operations/"+jobID+"/cancel", nil), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": jobID})
		rr := httptest.NewRecorder()

		s.CancelOperation().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		// a second cancel hits a terminal job
		rr = httptest.NewRecorder()
		s.CancelOperation().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("other owners cannot see the job", func(t *testing.T) {
		s, _, _, _ := newTestServer(t)

		jobID := s.bulk.Submit("user-1", "season_it", []manager.BulkItem{{ShowID: 1, Title: "Foo", InstanceID: 1}})

		req := withOwner(httptest.NewRequest("POST", "/api/v1/operations/"+jobID+"/cancel", nil), "user-2")
		req = mux.SetURLVars(req, map[string]string{"id": jobID})
		rr := httptest.NewRecorder()

		s.CancelOperation().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestServer_DownloadRelease(t *testing.T) {
	s, store, client, _ := newTestServer(t)

	store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(1)).Return(&model.SonarrInstance{
		ID: 1, OwnerID: "user-1", URL: "http://sonarr:8989", APIKey: "key",
	}, nil)
	client.EXPECT().DownloadRelease(gomock.Any(), "pack-1", int32(4)).Return(nil)

	body, err := json.Marshal(downloadRequest{InstanceID: 1, GUID: "pack-1", IndexerID: 4})
	require.NoError(t, err)

	req := withOwner(httptest.NewRequest("POST", "/api/v1/release/download", bytes.NewReader(body)), "user-1")
	rr := httptest.NewRecorder()

	s.DownloadRelease().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestParsePaginationParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activity", nil)
		params, err := ParsePaginationParams(req)
		require.NoError(t, err)
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 0, params.PageSize)
	})

	t.Run("explicit values", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activity?page=3&pageSize=25", nil)
		params, err := ParsePaginationParams(req)
		require.NoError(t, err)
		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.PageSize)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activity?page=0", nil)
		_, err := ParsePaginationParams(req)
		assert.Error(t, err)
	})

	t.Run("invalid pageSize", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/activity?pageSize=-1", nil)
		_, err := ParsePaginationParams(req)
		assert.Error(t, err)
	})
}

func TestServer_Shows(t *testing.T) {
	t.Run("requires instanceId", func(t *testing.T) {
		s, _, _, _ := newTestServer(t)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/shows", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ListShows().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("lists one page of the library", func(t *testing.T) {
		s, store, client, _ := newTestServer(t)

		store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(1)).Return(&model.SonarrInstance{
			ID: 1, OwnerID: "user-1", URL: "http://sonarr:8989", APIKey: "key",
		}, nil)
		client.EXPECT().ListSeries(gomock.Any()).Return([]sonarr.Series{
			{ID: 1, Title: "Alpha"},
			{ID: 2, Title: "Beta"},
			{ID: 3, Title: "Gamma"},
		}, nil)
		client.EXPECT().PosterURL(gomock.Any()).Return("").Times(3)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/shows?instanceId=1&page=2&pageSize=2", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ListShows().ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response showPage `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		require.Len(t, response.Response.Items, 1)
		assert.Equal(t, "Gamma", response.Response.Items[0].Title)
		assert.Equal(t, 3, response.Response.Meta.TotalItems)
		assert.Equal(t, 2, response.Response.Meta.TotalPages)
	})

	t.Run("unknown instance", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(9)).Return(nil, storage.ErrNotFound)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/shows?instanceId=9", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ListShows().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("get one show", func(t *testing.T) {
		s, store, client, _ := newTestServer(t)

		store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(1)).Return(&model.SonarrInstance{
			ID: 1, OwnerID: "user-1", URL: "http://sonarr:8989", APIKey: "key",
		}, nil)
		series := &sonarr.Series{ID: 42, Title: "Foo"}
		client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(series, nil)
		client.EXPECT().PosterURL(series).Return("")

		req := withOwner(httptest.NewRequest("GET", "/api/v1/shows/42?instanceId=1", nil), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()

		s.GetShow().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestServer_Notifications(t *testing.T) {
	t.Run("lists with meta", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)

		store.EXPECT().ListNotifications(gomock.Any(), "user-1", false, 0, 10).Return([]*storage.Notification{}, nil)
		store.EXPECT().CountNotifications(gomock.Any(), "user-1", false).Return(0, nil)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/notifications?page=1&pageSize=10", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ListNotifications().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unread only", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)

		store.EXPECT().ListNotifications(gomock.Any(), "user-1", true, 0, 0).Return([]*storage.Notification{}, nil)
		store.EXPECT().CountNotifications(gomock.Any(), "user-1", true).Return(0, nil)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/notifications?unreadOnly=true", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ListNotifications().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unread count", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().CountNotifications(gomock.Any(), "user-1", true).Return(3, nil)

		req := withOwner(httptest.NewRequest("GET", "/api/v1/notifications/unread-count", nil), "user-1")
		rr := httptest.NewRecorder()

		s.UnreadNotificationCount().ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response map[string]int `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 3, response.Response["count"])
	})

	t.Run("mark read", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().MarkNotificationRead(gomock.Any(), "user-1", int64(5), true).Return(nil)

		req := withOwner(httptest.NewRequest("PUT", "/api/v1/notifications/5", bytes.NewReader([]byte(`{"read": true}`))), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		s.UpdateNotification().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("mark unknown", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().MarkNotificationRead(gomock.Any(), "user-1", int64(99), true).Return(storage.ErrNotFound)

		req := withOwner(httptest.NewRequest("PUT", "/api/v1/notifications/99", bytes.NewReader([]byte(`{"read": true}`))), "user-1")
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		s.UpdateNotification().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("read all", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().MarkAllNotificationsRead(gomock.Any(), "user-1").Return(nil)

		req := withOwner(httptest.NewRequest("PUT", "/api/v1/notifications/read-all", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ReadAllNotifications().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("clear all", func(t *testing.T) {
		s, store, _, _ := newTestServer(t)
		store.EXPECT().PurgeNotifications(gomock.Any(), "user-1").Return(nil)

		req := withOwner(httptest.NewRequest("DELETE", "/api/v1/notifications", nil), "user-1")
		rr := httptest.NewRecorder()

		s.ClearNotifications().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
