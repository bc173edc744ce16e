package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"InvalidInput", apperrors.New(apperrors.InvalidInput, "x"), http.StatusBadRequest},
		{"NotFound", apperrors.New(apperrors.NotFound, "x"), http.StatusNotFound},
		{"Conflict", apperrors.New(apperrors.Conflict, "x"), http.StatusConflict},
		{"Unavailable", apperrors.New(apperrors.Unavailable, "x"), http.StatusServiceUnavailable},
		{"ExecutionFailed", apperrors.New(apperrors.ExecutionFailed, "x"), http.StatusInternalServerError},
		{"System", apperrors.New(apperrors.System, "x"), http.StatusInternalServerError},
		{"일반 에러", errors.New("plain"), http.StatusInternalServerError},
		{
			name: "가장 안쪽 타입 기준",
			err:  apperrors.Wrap(apperrors.New(apperrors.Unavailable, "upstream"), apperrors.Internal, "wrapped"),
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		err        error
		committed  bool
		wantStatus int
		wantBody   *response.ErrorResponse
	}{
		{
			name:       "라우터 기본 404",
			method:     http.MethodGet,
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   &response.ErrorResponse{ResultCode: 404, Message: constants.ErrMsgNotFound},
		},
		{
			name:       "HTTPError 커스텀 메시지 유지",
			method:     http.MethodGet,
			err:        NewBadRequestError(constants.ErrMsgProductIDRequired),
			wantStatus: http.StatusBadRequest,
			wantBody:   &response.ErrorResponse{ResultCode: 400, Message: constants.ErrMsgProductIDRequired},
		},
		{
			name:       "HTTPError 문자열 메시지",
			method:     http.MethodPost,
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, constants.ErrMsgRequestEntityTooLarge),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   &response.ErrorResponse{ResultCode: 413, Message: constants.ErrMsgRequestEntityTooLarge},
		},
		{
			name:       "AppError InvalidInput 메시지 노출",
			method:     http.MethodPost,
			err:        apperrors.New(apperrors.InvalidInput, "배송 정보를 입력해 주세요"),
			wantStatus: http.StatusBadRequest,
			wantBody:   &response.ErrorResponse{ResultCode: 400, Message: "배송 정보를 입력해 주세요"},
		},
		{
			name:       "AppError Internal 메시지 숨김",
			method:     http.MethodGet,
			err:        apperrors.New(apperrors.Internal, "secret detail"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   &response.ErrorResponse{ResultCode: 500, Message: constants.ErrMsgInternalServer},
		},
		{
			name:       "AppError System 메시지 노출",
			method:     http.MethodPost,
			err:        apperrors.New(apperrors.System, "PayPal Client ID is missing"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   &response.ErrorResponse{ResultCode: 500, Message: "PayPal Client ID is missing"},
		},
		{
			name:       "AppError Unavailable",
			method:     http.MethodGet,
			err:        apperrors.New(apperrors.Unavailable, "breaker open"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   &response.ErrorResponse{ResultCode: 503, Message: constants.ErrMsgServiceUnavailable},
		},
		{
			name:       "AppError 메시지 없음 Conflict",
			method:     http.MethodPost,
			err:        apperrors.New(apperrors.Conflict, ""),
			wantStatus: http.StatusConflict,
			wantBody:   &response.ErrorResponse{ResultCode: 409, Message: constants.ErrMsgConflict},
		},
		{
			name:       "AppError 메시지 없음 InvalidInput",
			method:     http.MethodPost,
			err:        apperrors.New(apperrors.InvalidInput, ""),
			wantStatus: http.StatusBadRequest,
			wantBody:   &response.ErrorResponse{ResultCode: 400, Message: constants.ErrMsgBadRequest},
		},
		{
			name:       "일반 에러",
			method:     http.MethodGet,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   &response.ErrorResponse{ResultCode: 500, Message: constants.ErrMsgInternalServer},
		},
		{
			name:       "HEAD 요청은 본문 없음",
			method:     http.MethodHead,
			err:        apperrors.New(apperrors.NotFound, "없음"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "이미 응답이 전송됨",
			method:     http.MethodGet,
			err:        errors.New("late"),
			committed:  true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/v1/products", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.committed {
				require.NoError(t, c.String(http.StatusOK, "done"))
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody == nil {
				if !tt.committed {
					assert.Empty(t, rec.Body.String())
				}
				return
			}

			var got response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, *tt.wantBody, got)
		})
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)

	require.NoError(t, Success(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result_code":0,"message":"성공"}`, rec.Body.String())
}
