package request

// CreateSessionRequest 체크아웃 세션 생성 요청
type CreateSessionRequest struct {
	// 결제할 장바구니의 클라이언트 키
	CartKey string `json:"cart_key" validate:"required,max=128" korean:"장바구니 키" example:"browser-7f3a"`
}

// ShippingRequest 배송 정보
type ShippingRequest struct {
	Name       string `json:"name" validate:"max=200" korean:"이름" example:"Jane Doe"`
	Address    string `json:"address" validate:"max=500" korean:"주소" example:"1 Main St"`
	City       string `json:"city" validate:"max=200" korean:"도시" example:"Springfield"`
	PostalCode string `json:"postalCode" validate:"max=32" korean:"우편번호" example:"12345"`
	Country    string `json:"country" validate:"max=100" korean:"국가" example:"US"`
}

// ConfirmRequest 수동 주문 확정 요청
type ConfirmRequest struct {
	Shipping ShippingRequest `json:"shipping"`
}

// ApproveRequest PayPal 결제 승인 콜백 요청
type ApproveRequest struct {
	// PayPal 주문 ID
	OrderID string `json:"order_id" validate:"required" korean:"주문 ID" example:"5O190127TN364715T"`
}

// PaymentErrorRequest PayPal 결제 오류 콜백 요청
type PaymentErrorRequest struct {
	// 위젯이 보고한 오류 메시지
	Message string `json:"message" validate:"max=1000" korean:"오류 메시지" example:"popup closed"`
}
