// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type httpGameRecordAdapter struct {
	client  *utils.HTTPClient
	regions map[models.Region]regionProfile
	ds      *dynamicSecret

	logger *logger.Logger
}

// NewHTTPGameRecordAdapter constructs the resty-backed [GameRecordAdapter].
// Every host in adapterCfg must be an absolute http(s) URL.
func NewHTTPGameRecordAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (GameRecordAdapter, error) {
	regions, err := newRegionProfiles(adapterCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter host: %w", err)
	}

	return &httpGameRecordAdapter{
		client:  utils.NewHTTPClient(adapterCfg.RequestTimeout),
		regions: regions,
		ds:      newDynamicSecret(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address %q must include http(s) scheme and host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetGameRoles implements [GameRecordAdapter]. It calls
// GET {takumi}/binding/api/getUserGameRolesByCookie?game_biz=...
func (h *httpGameRecordAdapter) GetGameRoles(ctx context.Context, region models.Region, cookie string) ([]models.Character, error) {
	profile, ok := h.regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}

	query := url.Values{}
	query.Set("game_biz", region.GameBiz())

	var data models.GameRolesData
	if err := h.get(ctx, profile, profile.takumiURL+gameRolesPath, query, cookie, &data); err != nil {
		return nil, fmt.Errorf("get game roles: %w", err)
	}

	return data.List, nil
}

// GetDailyNote implements [GameRecordAdapter]. The path differs per region;
// the query is role_id and server in both.
func (h *httpGameRecordAdapter) GetDailyNote(ctx context.Context, region models.Region, server, uid, cookie string) (models.RealTimeNote, error) {
	profile, ok := h.regions[region]
	if !ok {
		return models.RealTimeNote{}, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}

	query := url.Values{}
	query.Set("role_id", uid)
	query.Set("server", server)

	var note models.RealTimeNote
	if err := h.get(ctx, profile, profile.recordURL+profile.dailyNotePath, query, cookie, &note); err != nil {
		return models.RealTimeNote{}, fmt.Errorf("get daily note: %w", err)
	}

	note.UID = uid
	return note, nil
}

// get issues a signed GET and decodes the envelope's data into out.
func (h *httpGameRecordAdapter) get(ctx context.Context, profile regionProfile, endpoint string, query url.Values, cookie string, out any) error {
	var ds string
	if profile.region == models.RegionMainland {
		ds = h.ds.mainland("", query.Encode())
	} else {
		ds = h.ds.global()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(profile.headers(cookie, ds)).
		SetQueryParamsFromValues(query).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	event := h.logger.Debug()
	if accountID, ok := utils.GetAccountIDFromContext(ctx); ok {
		event = event.Str("account_id", accountID)
	}
	event.
		Str("region", string(profile.region)).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("game record request")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeEnvelope(resp.Body(), out)
}
