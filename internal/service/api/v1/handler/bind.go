package handler

import (
	apphandler "github.com/darkkaiser/storefront-server/internal/service/api/handler"
	"github.com/labstack/echo/v4"
)

// bindAndValidate 요청 본문을 req에 바인딩하고 validate 태그로 검증합니다.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := apphandler.ValidateRequest(req); err != nil {
		return NewErrValidationFailed(apphandler.FormatValidationError(err))
	}
	return nil
}
