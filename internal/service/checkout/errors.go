package checkout

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrSessionNotFound 세션이 없거나 만료되었을 때 반환됩니다.
	ErrSessionNotFound = apperrors.New(apperrors.NotFound, "체크아웃 세션을 찾을 수 없습니다")

	// ErrShippingIncomplete 필수 배송 정보가 누락되었을 때 반환됩니다.
	ErrShippingIncomplete = apperrors.New(apperrors.InvalidInput, msgShippingIncomplete)

	// ErrNonPositiveTotal 주문 금액이 0 이하일 때 반환됩니다.
	ErrNonPositiveTotal = apperrors.New(apperrors.InvalidInput, msgNonPositiveTotal)

	// ErrWidgetNotInteractive 위젯이 서버 측 결제 동작을 지원하지 않을 때 반환됩니다.
	ErrWidgetNotInteractive = apperrors.New(apperrors.Conflict, "결제 위젯이 서버 측 결제 동작을 지원하지 않습니다")

	// ErrEmptyCartKey 장바구니 키가 비어 있을 때 반환됩니다.
	ErrEmptyCartKey = apperrors.New(apperrors.InvalidInput, "장바구니 키(cart_key)가 비어 있습니다")
)

// NewErrInvalidState 현재 상태에서 허용되지 않는 동작일 때의 에러를 생성합니다.
func NewErrInvalidState(state State, action string) error {
	return apperrors.New(apperrors.Conflict, fmt.Sprintf("현재 상태(%s)에서는 '%s' 동작을 수행할 수 없습니다", state, action))
}
