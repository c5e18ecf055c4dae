package config

import "time"

// Defaults applied after all sources are merged.
const (
	DefaultDSN               = "resin-keeper.db"
	DefaultMainlandTakumiURL = "https://api-takumi.mihoyo.com"
	DefaultMainlandRecordURL = "https://api-takumi-record.mihoyo.com"
	DefaultGlobalTakumiURL   = "https://api-os-takumi.mihoyo.com"
	DefaultGlobalRecordURL   = "https://bbs-api-os.hoyolab.com"
	DefaultLanguage          = "en-us"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultServerTimeout     = 10 * time.Second
	DefaultTickInterval      = time.Second
	DefaultRefreshInterval   = 8 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.Storage.DB.DSN, DefaultDSN)
	setDefault(&cfg.Adapter.MainlandTakumiURL, DefaultMainlandTakumiURL)
	setDefault(&cfg.Adapter.MainlandRecordURL, DefaultMainlandRecordURL)
	setDefault(&cfg.Adapter.GlobalTakumiURL, DefaultGlobalTakumiURL)
	setDefault(&cfg.Adapter.GlobalRecordURL, DefaultGlobalRecordURL)
	setDefault(&cfg.Adapter.Language, DefaultLanguage)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.RequestTimeout, DefaultServerTimeout)
	setDefault(&cfg.Workers.TickInterval, DefaultTickInterval)
	setDefault(&cfg.Workers.RefreshInterval, DefaultRefreshInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
