package adapter

import (
	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/models"
)

const (
	mainlandAppVersion = "2.40.1"
	globalAppVersion   = "1.5.0"
	clientTypeWeb      = "5"

	mainlandUserAgent = "Mozilla/5.0 (Linux; Android 12; Mobile) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/103.0.5060.129 Mobile Safari/537.36 miHoYoBBS/" + mainlandAppVersion
	globalUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"

	mainlandOrigin  = "https://webstatic.mihoyo.com"
	mainlandReferer = "https://webstatic.mihoyo.com/"
	globalOrigin    = "https://act.hoyolab.com"
	globalReferer   = "https://act.hoyolab.com/"

	mainlandRequestedWith = "com.mihoyo.hyperion"
	globalRequestedWith   = "com.mihoyo.hoyolab"

	gameRolesPath        = "/binding/api/getUserGameRolesByCookie"
	mainlandDailyNoteURI = "/game_record/app/genshin/api/dailyNote"
	globalDailyNoteURI   = "/game_record/genshin/api/dailyNote"
)

// regionProfile is everything that differs between the two backends.
type regionProfile struct {
	region        models.Region
	takumiURL     string
	recordURL     string
	dailyNotePath string

	appVersion    string
	userAgent     string
	origin        string
	referer       string
	requestedWith string
	language      string
}

func newRegionProfiles(cfg config.ClientAdapter) (map[models.Region]regionProfile, error) {
	mainlandTakumi, err := normalizeBaseURL(cfg.MainlandTakumiURL)
	if err != nil {
		return nil, err
	}
	mainlandRecord, err := normalizeBaseURL(cfg.MainlandRecordURL)
	if err != nil {
		return nil, err
	}
	globalTakumi, err := normalizeBaseURL(cfg.GlobalTakumiURL)
	if err != nil {
		return nil, err
	}
	globalRecord, err := normalizeBaseURL(cfg.GlobalRecordURL)
	if err != nil {
		return nil, err
	}

	return map[models.Region]regionProfile{
		models.RegionMainland: {
			region:        models.RegionMainland,
			takumiURL:     mainlandTakumi,
			recordURL:     mainlandRecord,
			dailyNotePath: mainlandDailyNoteURI,
			appVersion:    mainlandAppVersion,
			userAgent:     mainlandUserAgent,
			origin:        mainlandOrigin,
			referer:       mainlandReferer,
			requestedWith: mainlandRequestedWith,
		},
		models.RegionGlobal: {
			region:        models.RegionGlobal,
			takumiURL:     globalTakumi,
			recordURL:     globalRecord,
			dailyNotePath: globalDailyNoteURI,
			appVersion:    globalAppVersion,
			userAgent:     globalUserAgent,
			origin:        globalOrigin,
			referer:       globalReferer,
			requestedWith: globalRequestedWith,
			language:      cfg.Language,
		},
	}, nil
}

// headers builds the request headers for p. ds is the already computed
// dynamic secret.
func (p regionProfile) headers(cookie, ds string) map[string]string {
	h := map[string]string{
		"Cookie":            cookie,
		"DS":                ds,
		"Origin":            p.origin,
		"Referer":           p.referer,
		"User-Agent":        p.userAgent,
		"X-Requested-With":  p.requestedWith,
		"x-rpc-app_version": p.appVersion,
		"x-rpc-client_type": clientTypeWeb,
	}
	if p.language != "" {
		h["x-rpc-language"] = p.language
	}
	return h
}
