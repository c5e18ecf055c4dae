package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings shared by the TUI and the daemon.
type ClientApp struct {
	// HashKey is the secret the cookie sealing key is derived from.
	HashKey string
	// Version overrides the build version when non-empty.
	Version string
}

// ClientAdapter holds the game record API settings.
type ClientAdapter struct {
	MainlandTakumiURL string
	MainlandRecordURL string
	GlobalTakumiURL   string
	GlobalRecordURL   string
	// Language is sent as x-rpc-language to the global region.
	Language string
	// RequestTimeout bounds every outbound API call.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains poll loop settings.
type ClientWorkers struct {
	// TickInterval defines how often the poll loop checks whether a refresh is due.
	TickInterval time.Duration
	// RefreshInterval is the minimum time between two fetches for one target.
	RefreshInterval time.Duration
}

// ClientServer contains the optional local status API settings.
type ClientServer struct {
	// HTTPAddress is empty when the status API is disabled.
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Server  ClientServer
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetDaemonConfig is [GetClientConfig] for the headless daemon, which
// additionally requires the status API address.
func GetDaemonConfig() (*ClientConfig, error) {
	cfg, err := GetClientConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Server.HTTPAddress == "" {
		return nil, ErrInvalidServerConfigs
	}

	return cfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			MainlandTakumiURL: cfg.Adapter.MainlandTakumiURL,
			MainlandRecordURL: cfg.Adapter.MainlandRecordURL,
			GlobalTakumiURL:   cfg.Adapter.GlobalTakumiURL,
			GlobalRecordURL:   cfg.Adapter.GlobalRecordURL,
			Language:          cfg.Adapter.Language,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			TickInterval:    cfg.Workers.TickInterval,
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}
}
