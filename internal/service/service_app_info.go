package service

import (
	"context"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	version   string
}

// NewAppInfoService reports buildInfo. A non-empty cfg.Version overrides
// the build version.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.ClientApp) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		buildInfo: buildInfo,
		version:   version,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
