package response

import "github.com/darkkaiser/storefront-server/internal/service/cart"

// CartResponse 장바구니 조회 응답
type CartResponse struct {
	Lines []cart.Line `json:"lines"`
	// 합계 (소수점 둘째 자리까지의 문자열)
	Total string `json:"total" example:"80.00"`
}

// PaymentOrderResponse PayPal 주문 생성 응답
type PaymentOrderResponse struct {
	OrderID string `json:"order_id" example:"5O190127TN364715T"`
}
