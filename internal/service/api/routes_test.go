package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, system.NewHandler(version.Info{Version: "1.0.0"}))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /health", "GET /version", "GET /swagger/*"} {
		assert.True(t, registered[want], "%s 라우트가 등록되어야 합니다", want)
	}
}

func TestRegisterRoutes_Serve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "헬스체크", path: "/health", wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "버전", path: "/version", wantStatus: http.StatusOK, wantBody: "1.0.0"},
		{name: "Swagger 문서", path: "/swagger/doc.json", wantStatus: http.StatusOK, wantBody: "Storefront Server API"},
	}

	e := echo.New()
	RegisterRoutes(e, system.NewHandler(version.Info{Version: "1.0.0"}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
