package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, fn echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	require.NoError(t, fn(c))
	return rec
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(version.Info{Version: "1.0.0"})

	assert.Equal(t, "1.0.0", h.buildInfo.Version)
	assert.WithinDuration(t, time.Now(), h.serverStartTime, time.Second)
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("circuit breaker open") }

	tests := []struct {
		name       string
		checks     []DependencyCheck
		wantStatus string
		verify     func(*testing.T, map[string]system.DependencyStatus)
	}{
		{
			name:       "의존성 없음",
			wantStatus: constants.HealthStatusHealthy,
		},
		{
			name: "모두 정상",
			checks: []DependencyCheck{
				{Name: constants.DependencyShopify, Check: ok},
				{Name: constants.DependencyPayPal, Check: ok},
			},
			wantStatus: constants.HealthStatusHealthy,
			verify: func(t *testing.T, deps map[string]system.DependencyStatus) {
				assert.Len(t, deps, 2)
				assert.Equal(t, constants.MsgDepStatusHealthy, deps[constants.DependencyShopify].Message)
			},
		},
		{
			name: "하나라도 비정상이면 unhealthy",
			checks: []DependencyCheck{
				{Name: constants.DependencyShopify, Check: fail},
				{Name: constants.DependencyCatalogCache, Check: ok},
			},
			wantStatus: constants.HealthStatusUnhealthy,
			verify: func(t *testing.T, deps map[string]system.DependencyStatus) {
				assert.Equal(t, constants.HealthStatusUnhealthy, deps[constants.DependencyShopify].Status)
				assert.Equal(t, "circuit breaker open", deps[constants.DependencyShopify].Message)
				assert.Equal(t, constants.HealthStatusHealthy, deps[constants.DependencyCatalogCache].Status)
			},
		},
		{
			name: "점검에는 타임아웃 컨텍스트가 전달됨",
			checks: []DependencyCheck{
				{Name: constants.DependencyCatalogCache, Check: func(ctx context.Context) error {
					if _, ok := ctx.Deadline(); !ok {
						return errors.New("no deadline")
					}
					return nil
				}},
			},
			wantStatus: constants.HealthStatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(version.Info{}, tt.checks...)
			rec := invoke(t, h.HealthCheckHandler, "/health")

			require.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))
			if tt.verify != nil {
				tt.verify(t, resp.Dependencies)
			}
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(version.Info{
		Version:     "v1.2.0",
		Commit:      "abc1234",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "42",
	})

	rec := invoke(t, h.VersionHandler, "/version")

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "abc1234",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "42",
		GoVersion:   runtime.Version(),
	}, resp)
}
