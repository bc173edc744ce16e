// Package pricing 공급가(raw price)를 판매가와 비교가(compare-at price)로 변환합니다.
package pricing

import (
	"strconv"

	"github.com/darkkaiser/storefront-server/pkg/maputil"
)

const (
	// Multiplier 공급가에 곱해 판매가를 산출하는 배수
	Multiplier = 2

	// CompareMultiplier 판매가에 곱해 비교가(정가 표시)를 산출하는 배수
	CompareMultiplier = 2.0
)

// Price 화면에 표시되는 가격 쌍
type Price struct {
	Display float64 `json:"display_price"`
	Compare float64 `json:"compare_price"`
}

// Adjust 업스트림이 내려준 공급가를 판매가와 비교가로 변환합니다.
//
// raw는 숫자 또는 숫자 문자열("19.99")이며, 없거나 해석할 수 없는 값은 0으로 처리됩니다.
// 음수도 그대로 배수가 적용됩니다. 에러를 반환하지 않습니다.
func Adjust(raw any) Price {
	display := maputil.ToFloat(raw) * Multiplier

	return Price{
		Display: display,
		Compare: display * CompareMultiplier,
	}
}

// FormatAmount 금액을 소수점 둘째 자리까지의 문자열로 변환합니다. 예: 40 → "40.00"
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
