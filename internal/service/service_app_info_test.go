package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name      string
		buildInfo models.AppBuildInfo
		cfg       config.ClientApp
		want      string
	}{
		{
			name:      "build version",
			buildInfo: models.NewAppBuildInfo("1.2.0", "2026-03-01", "abc123"),
			want:      "1.2.0",
		},
		{
			name:      "config override",
			buildInfo: models.NewAppBuildInfo("1.2.0", "", ""),
			cfg:       config.ClientApp{Version: "v1.2.3-beta+build.42"},
			want:      "v1.2.3-beta+build.42",
		},
		{
			name:      "nothing known",
			buildInfo: models.NewAppBuildInfo("", "", ""),
			want:      "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.buildInfo, tt.cfg)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
			assert.Equal(t, tt.buildInfo, svc.BuildInfo())
		})
	}
}

func TestAppInfoService_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), config.ClientApp{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
