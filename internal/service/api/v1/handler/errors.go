package handler

import (
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문을 파싱할 수 없을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 값 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrProductIDRequired 상품 ID가 없을 때의 에러를 생성합니다.
func NewErrProductIDRequired() error {
	return httputil.NewBadRequestError(constants.ErrMsgProductIDRequired)
}

// NewErrProductDetailsFailed 상품 상세 조회 실패 에러를 생성합니다. 원인과 관계없이 500으로 응답합니다.
func NewErrProductDetailsFailed() error {
	return httputil.NewInternalServerError("Failed to fetch product details")
}
