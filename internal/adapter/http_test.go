// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "ltuid=100000001; ltoken=token"

// newTestAdapter points every host of both regions at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpGameRecordAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		MainlandTakumiURL: serverURL + "/cn-takumi",
		MainlandRecordURL: serverURL + "/cn-record",
		GlobalTakumiURL:   serverURL + "/os-takumi",
		GlobalRecordURL:   serverURL + "/os-record",
		Language:          "en-us",
		RequestTimeout:    2 * time.Second,
	}

	a, err := NewHTTPGameRecordAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGameRecordAdapter)
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPGameRecordAdapter_InvalidHost(t *testing.T) {
	_, err := NewHTTPGameRecordAdapter(config.ClientAdapter{
		MainlandTakumiURL: "api-takumi.mihoyo.com",
		MainlandRecordURL: "https://a",
		GlobalTakumiURL:   "https://b",
		GlobalRecordURL:   "https://c",
	}, logger.Nop())
	assert.Error(t, err)
}

// ── GetGameRoles ────────────────────────────────────────────────────────────

func TestGetGameRoles_Mainland(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cn-takumi/binding/api/getUserGameRolesByCookie", r.URL.Path)
		assert.Equal(t, "hk4e_cn", r.URL.Query().Get("game_biz"))

		assert.Equal(t, testCookie, r.Header.Get("Cookie"))
		assert.Equal(t, mainlandAppVersion, r.Header.Get("x-rpc-app_version"))
		assert.Equal(t, clientTypeWeb, r.Header.Get("x-rpc-client_type"))
		assert.Equal(t, mainlandOrigin, r.Header.Get("Origin"))
		assert.Equal(t, mainlandRequestedWith, r.Header.Get("X-Requested-With"))
		assert.Empty(t, r.Header.Get("x-rpc-language"))
		assert.Len(t, strings.Split(r.Header.Get("DS"), ","), 3)

		writeBody(w, `{"retcode":0,"message":"OK","data":{"list":[
			{"game_biz":"hk4e_cn","region":"cn_gf01","game_uid":"100000001","nickname":"Traveler","level":60,"is_chosen":true,"region_name":"天空岛"}
		]}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	roles, err := a.GetGameRoles(context.Background(), models.RegionMainland, testCookie)

	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "100000001", roles[0].UID)
	assert.Equal(t, "cn_gf01", roles[0].Server)
	assert.Equal(t, "Traveler", roles[0].Nickname)
	assert.Equal(t, 60, roles[0].Level)
	assert.True(t, roles[0].IsChosen)
	assert.Empty(t, roles[0].AccountID)
}

func TestGetGameRoles_GlobalHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/os-takumi/binding/api/getUserGameRolesByCookie", r.URL.Path)
		assert.Equal(t, "hk4e_global", r.URL.Query().Get("game_biz"))
		assert.Equal(t, globalAppVersion, r.Header.Get("x-rpc-app_version"))
		assert.Equal(t, "en-us", r.Header.Get("x-rpc-language"))
		assert.Equal(t, globalOrigin, r.Header.Get("Origin"))

		writeBody(w, `{"retcode":0,"message":"OK","data":{"list":[]}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	roles, err := a.GetGameRoles(context.Background(), models.RegionGlobal, testCookie)

	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestGetGameRoles_UnknownRegion(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	_, err := a.GetGameRoles(context.Background(), models.Region("moon"), testCookie)
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

// ── GetDailyNote ────────────────────────────────────────────────────────────

func TestGetDailyNote_MainlandPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cn-record/game_record/app/genshin/api/dailyNote", r.URL.Path)
		assert.Equal(t, "100000001", r.URL.Query().Get("role_id"))
		assert.Equal(t, "cn_gf01", r.URL.Query().Get("server"))

		writeBody(w, `{"retcode":0,"message":"OK","data":{
			"current_resin":120,"max_resin":160,"resin_recovery_time":"19200",
			"finished_task_num":4,"total_task_num":4,"is_extra_task_reward_received":true,
			"remain_resin_discount_num":1,"resin_discount_num_limit":3,
			"current_expedition_num":2,"max_expedition_num":5,
			"expeditions":[
				{"avatar_side_icon":"a.png","status":"Ongoing","remained_time":"3600"},
				{"avatar_side_icon":"b.png","status":"Finished","remained_time":"0"}
			],
			"current_home_coin":900,"max_home_coin":2400,"home_coin_recovery_time":"36000",
			"transformer":{"obtained":true,"recovery_time":{"Day":1,"Hour":2,"Minute":0,"Second":0,"reached":false}}
		}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	note, err := a.GetDailyNote(context.Background(), models.RegionMainland, "cn_gf01", "100000001", testCookie)

	require.NoError(t, err)
	assert.Equal(t, "100000001", note.UID)
	assert.Equal(t, 120, note.CurrentResin)
	assert.Equal(t, 160, note.MaxResin)
	assert.Equal(t, 19200*time.Second, note.ResinRecoveryTime.Duration())
	assert.True(t, note.CommissionsDone())
	require.Len(t, note.Expeditions, 2)
	assert.Equal(t, models.ExpeditionFinished, note.Expeditions[1].Status)
	assert.Equal(t, 26*time.Hour, note.Transformer.RecoveryTime.Duration())
	assert.True(t, note.FetchedAt.IsZero())
}

func TestGetDailyNote_GlobalPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/os-record/game_record/genshin/api/dailyNote", r.URL.Path)
		writeBody(w, `{"retcode":0,"message":"OK","data":{"current_resin":160,"max_resin":160,"resin_recovery_time":0}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	note, err := a.GetDailyNote(context.Background(), models.RegionGlobal, "os_euro", "700000001", testCookie)

	require.NoError(t, err)
	assert.Equal(t, 160, note.CurrentResin)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestGetDailyNote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "cookie invalid", status: http.StatusOK, body: `{"retcode":10001,"message":"Please login"}`, wantErr: ErrCookieExpired},
		{name: "not logged in", status: http.StatusOK, body: `{"retcode":-100,"message":"not logged in"}`, wantErr: ErrCookieExpired},
		{name: "data not public", status: http.StatusOK, body: `{"retcode":10102,"message":"Data is not public"}`, wantErr: ErrDataNotPublic},
		{name: "captcha", status: http.StatusOK, body: `{"retcode":1034,"message":"verify"}`, wantErr: ErrVerificationRequired},
		{name: "captcha alt", status: http.StatusOK, body: `{"retcode":10035,"message":"verify"}`, wantErr: ErrVerificationRequired},
		{name: "other retcode", status: http.StatusOK, body: `{"retcode":-1,"message":"system busy"}`, wantErr: ErrAPI},
		{name: "bad status", status: http.StatusBadGateway, body: `oops`, wantErr: ErrBadStatus},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrMalformedResponse},
		{name: "null data", status: http.StatusOK, body: `{"retcode":0,"message":"OK","data":null}`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetDailyNote(context.Background(), models.RegionGlobal, "os_euro", "700000001", testCookie)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetGameRoles_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"retcode":0,"message":"OK","data":{"list":[]}}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetGameRoles(ctx, models.RegionGlobal, testCookie)
	assert.ErrorIs(t, err, context.Canceled)
}
