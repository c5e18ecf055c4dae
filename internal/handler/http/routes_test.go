package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	servicemock "github.com/MKhiriev/go-resin-keeper/internal/service/mock"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	accounts  *servicemock.MockAccountService
	notes     *servicemock.MockNotesService
	selection *servicemock.MockSelectionService
	appInfo   *servicemock.MockAppInfoService
	pollJob   *servicemock.MockPollJob
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		accounts:  servicemock.NewMockAccountService(ctrl),
		notes:     servicemock.NewMockNotesService(ctrl),
		selection: servicemock.NewMockSelectionService(ctrl),
		appInfo:   servicemock.NewMockAppInfoService(ctrl),
		pollJob:   servicemock.NewMockPollJob(ctrl),
	}
	services := &service.ClientServices{
		AccountService:   m.accounts,
		NotesService:     m.notes,
		SelectionService: m.selection,
		AppInfoService:   m.appInfo,
		PollJob:          m.pollJob,
	}

	h := NewHandler(services, time.Second, logger.Nop())
	h.now = func() time.Time { return testNow }
	return h.Init(), m
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRoutes_Version(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(router, http.MethodGet, "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_ListAccounts_HidesCookies(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return([]models.Account{{
		ID:        "acc-1",
		Region:    models.RegionMainland,
		MihoyoUID: "1001",
		Cookie:    "sealed-secret",
		Status:    models.StatusReady,
	}}, nil)

	rec := serve(router, http.MethodGet, "/api/accounts")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sealed-secret")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "acc-1", got[0]["id"])
	assert.Equal(t, "ready", got[0]["status"])
}

func TestRoutes_ListAccounts_EmptyIsArray(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := serve(router, http.MethodGet, "/api/accounts")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes_ListAccounts_StoreError_HidesDetails(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: disk I/O error", store.ErrExecutingQuery))

	rec := serve(router, http.MethodGet, "/api/accounts")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec))
}

func TestRoutes_RefreshAccount(t *testing.T) {
	tests := []struct {
		name       string
		account    models.Account
		err        error
		wantStatus int
	}{
		{
			name:       "ready",
			account:    models.Account{ID: "acc-1", Status: models.StatusReady},
			wantStatus: http.StatusOK,
		},
		{name: "not found", err: store.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{name: "busy", err: service.ErrAccountBusy, wantStatus: http.StatusConflict},
		{name: "disabled", err: service.ErrAccountDisabled, wantStatus: http.StatusConflict},
		{name: "cookie expired", err: adapter.ErrCookieExpired, wantStatus: http.StatusBadGateway},
		{name: "api error", err: fmt.Errorf("%w: retcode -1", adapter.ErrAPI), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.accounts.EXPECT().Refresh(gomock.Any(), "acc-1").Return(tt.account, tt.err)

			rec := serve(router, http.MethodPost, "/api/accounts/acc-1/refresh")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				assert.Equal(t, service.UserMessage(tt.err), decodeError(t, rec))
			}
		})
	}
}

func TestRoutes_ListCharacters(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().Characters(gomock.Any()).Return([]models.AccountCharacter{{
		Character: models.Character{UID: "700000001", Nickname: "Lumine", Server: "os_euro"},
		Region:    models.RegionGlobal,
	}}, nil)

	rec := serve(router, http.MethodGet, "/api/characters")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "700000001", got[0]["game_uid"])
	assert.Equal(t, "global", got[0]["account_region"])
}

func TestRoutes_GetNotes(t *testing.T) {
	router, m := newTestRouter(t)
	fetchedAt := testNow.Add(-17 * time.Minute)
	m.notes.EXPECT().Latest("700000001").Return(models.RealTimeNote{
		UID:               "700000001",
		CurrentResin:      100,
		MaxResin:          200,
		ResinRecoveryTime: 48000,
		FetchedAt:         fetchedAt,
	}, true)

	rec := serve(router, http.MethodGet, "/api/characters/700000001/notes")

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		CurrentResin   int       `json:"current_resin"`
		EstimatedResin int       `json:"estimated_resin"`
		ResinFullAt    time.Time `json:"resin_full_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 100, got.CurrentResin)
	assert.Equal(t, 102, got.EstimatedResin)
	assert.True(t, fetchedAt.Add(48000*time.Second).Equal(got.ResinFullAt))
}

func TestRoutes_GetNotes_NotCached(t *testing.T) {
	router, m := newTestRouter(t)
	m.notes.EXPECT().Latest("700000001").Return(models.RealTimeNote{}, false)

	rec := serve(router, http.MethodGet, "/api/characters/700000001/notes")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_RefreshNotes(t *testing.T) {
	router, m := newTestRouter(t)
	m.notes.EXPECT().Refresh(gomock.Any(), "700000001").Return(models.RealTimeNote{}, service.ErrAccountNotReady)

	rec := serve(router, http.MethodPost, "/api/characters/700000001/notes/refresh")

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_Selection(t *testing.T) {
	router, m := newTestRouter(t)
	selected := models.AccountCharacter{Character: models.Character{UID: "700000001"}}

	gomock.InOrder(
		m.selection.EXPECT().Select(gomock.Any(), "700000001").Return(selected, nil),
		m.pollJob.EXPECT().Trigger(),
	)
	rec := serve(router, http.MethodPut, "/api/selection/700000001")
	require.Equal(t, http.StatusOK, rec.Code)

	m.selection.EXPECT().Selected(gomock.Any()).Return(selected, nil)
	rec = serve(router, http.MethodGet, "/api/selection")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"game_uid":"700000001"`)
}

func TestRoutes_Selection_Errors(t *testing.T) {
	router, m := newTestRouter(t)

	m.selection.EXPECT().Select(gomock.Any(), "404").Return(models.AccountCharacter{}, store.ErrCharacterNotFound)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPut, "/api/selection/404").Code)

	m.selection.EXPECT().Select(gomock.Any(), "1").Return(models.AccountCharacter{}, service.ErrCharacterNotSelectable)
	assert.Equal(t, http.StatusConflict, serve(router, http.MethodPut, "/api/selection/1").Code)

	m.selection.EXPECT().Selected(gomock.Any()).Return(models.AccountCharacter{}, service.ErrNoSelection)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/selection").Code)
}

func TestRoutes_WrongMethod_405(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodPost, "/api/version", "GET"},
		{http.MethodDelete, "/api/accounts", "GET"},
		{http.MethodGet, "/api/accounts/acc-1/refresh", "POST"},
		{http.MethodPost, "/api/selection/123", "PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path)

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.Equal(t, "Method Not Allowed", decodeError(t, rec))
		})
	}
}

func TestRoutes_UnknownPath_404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec))
}

func TestRoutes_PanicRecovered(t *testing.T) {
	router, m := newTestRouter(t)
	m.accounts.EXPECT().Characters(gomock.Any()).DoAndReturn(func(context.Context) ([]models.AccountCharacter, error) {
		panic("boom")
	})

	rec := serve(router, http.MethodGet, "/api/characters")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
