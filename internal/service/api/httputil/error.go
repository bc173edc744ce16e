package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusCode apperrors.ErrorType에 대응하는 HTTP 상태 코드를 반환합니다.
//
// 에러 체인의 가장 안쪽 AppError를 기준으로 판단하므로, 업스트림의 Unavailable 에러를
// 상위 계층이 다른 타입으로 감싸더라도 503으로 응답합니다.
func StatusCode(err error) int {
	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fallbackMessages 에러에 메시지가 없을 때 상태 코드별로 사용하는 메시지
var fallbackMessages = map[int]string{
	http.StatusBadRequest:          constants.ErrMsgBadRequest,
	http.StatusNotFound:            constants.ErrMsgNotFound,
	http.StatusConflict:            constants.ErrMsgConflict,
	http.StatusInternalServerError: constants.ErrMsgInternalServer,
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 핸들러가 반환한 AppError는 StatusCode 규칙으로 상태 코드를 정하고, 메시지는 에러의 Message를 사용합니다.
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else if resp, ok := he.Message.(response.ErrorResponse); ok {
			message = resp.Message
		}

		// 라우터가 생성한 기본 404 메시지는 사용자 친화적인 한국어 메시지로 통일
		if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
			message = constants.ErrMsgNotFound
		}

	case errors.As(err, &appErr):
		code = StatusCode(err)
		message = appErr.Message()

		// 5xx 응답에는 내부 구현 정보가 섞일 수 있으므로 고정 메시지를 사용합니다.
		// 단, System 타입(설정 누락 등)의 메시지는 운영자가 조치할 수 있도록 그대로 노출합니다.
		if code == http.StatusInternalServerError && apperrors.UnderlyingType(err) != apperrors.System {
			message = constants.ErrMsgInternalServer
		}
		if code == http.StatusServiceUnavailable {
			message = constants.ErrMsgServiceUnavailable
		}
	}

	if message == "" {
		message = fallbackMessages[code]
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
