package payment

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrClientIDMissing PayPal Client ID가 설정되지 않았을 때 반환됩니다.
	ErrClientIDMissing = apperrors.New(apperrors.System, "PayPal Client ID is missing")

	// ErrSecretMissing PayPal Secret이 설정되지 않았을 때 반환됩니다.
	ErrSecretMissing = apperrors.New(apperrors.System, "PayPal Secret is missing")

	// ErrNotRendered 결제 버튼이 렌더링되기 전에 결제 동작이 요청되었을 때 반환됩니다.
	ErrNotRendered = apperrors.New(apperrors.Conflict, "결제 버튼이 아직 렌더링되지 않았습니다")

	// ErrNotLoaded 결제 스크립트를 불러오기 전에 렌더링이 요청되었을 때 반환됩니다.
	ErrNotLoaded = apperrors.New(apperrors.Conflict, "결제 스크립트를 아직 불러오지 않았습니다")
)

// NewErrInvalidAmount 결제 금액이 올바르지 않을 때의 에러를 생성합니다.
func NewErrInvalidAmount(amount float64) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("결제 금액(%v)은 0보다 커야 합니다", amount))
}

// NewErrInvalidCurrency 통화 코드가 ISO 4217 형식이 아닐 때의 에러를 생성합니다.
func NewErrInvalidCurrency(err error, code string) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 통화 코드입니다: %q", code))
}

// NewErrCaptureNotCompleted 결제 확정 응답의 상태가 COMPLETED가 아닐 때의 에러를 생성합니다.
func NewErrCaptureNotCompleted(orderID, status string) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("결제 확정이 완료되지 않았습니다. (주문: %s, 상태: %s)", orderID, status))
}

// newErrProviderFailed PayPal API 호출 실패를 ExecutionFailed로 감쌉니다. 응답에 message가 있으면 함께 표시합니다.
func newErrProviderFailed(err error, action, providerMessage string) error {
	if providerMessage != "" {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("PayPal %s 요청이 실패했습니다: %s", action, providerMessage))
	}
	return apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("PayPal %s 요청이 실패했습니다", action))
}
