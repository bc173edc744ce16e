package request

// CreatePaymentRequest 결제 생성 요청
type CreatePaymentRequest struct {
	// 결제 금액
	Amount float64 `json:"amount" validate:"gt=0" korean:"결제 금액" example:"40"`
	// ISO 4217 통화 코드 (비어 있으면 서버 설정값 사용)
	Currency string `json:"currency" validate:"omitempty,iso4217" korean:"통화" example:"USD"`
}
