package checkout

import (
	"context"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
)

// State 체크아웃 세션의 상태
type State string

const (
	StateLoadingCart           State = "loading-cart"
	StateEmptyCartRedirect     State = "empty-cart-redirect"
	StateAwaitingPaymentWidget State = "awaiting-payment-widget"
	StatePaymentReady          State = "payment-ready"
	StateCapturingPayment      State = "capturing-payment"
	StatePaymentSucceeded      State = "payment-succeeded"
	StatePaymentFailed         State = "payment-failed"
	StatePaymentCancelled      State = "payment-cancelled"
	StateManualConfirmation    State = "manual-confirmation"
)

// Terminal 더 이상 상태가 바뀌지 않는 종료 상태인지 확인합니다.
func (s State) Terminal() bool {
	switch s {
	case StateEmptyCartRedirect, StatePaymentSucceeded, StateManualConfirmation:
		return true
	default:
		return false
	}
}

// ShippingInfo 배송 정보. Name, Address, City는 필수입니다.
type ShippingInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Order 주문 확정 시 lastOrder 슬롯에 기록되는 주문 레코드
type Order struct {
	CartItems    []cart.Line  `json:"cartItems"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	TotalPrice   string       `json:"totalPrice"`
	OrderDate    string       `json:"orderDate"`
}

// Amount 결제 금액
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// PurchaseUnit 결제 주문 생성 시 전달하는 구매 단위
type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

// ApproveData 결제 승인 콜백으로 전달되는 정보
type ApproveData struct {
	OrderID string `json:"order_id"`
}

// CaptureResult 결제 확정(capture) 결과
type CaptureResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderActions 승인된 결제 주문에 대해 수행할 수 있는 동작
type OrderActions interface {
	Capture(ctx context.Context) (CaptureResult, error)
}

// Buttons 결제 위젯이 사용자 동작에 따라 호출하는 콜백 묶음
type Buttons struct {
	CreateOrder func(ctx context.Context) (PurchaseUnit, error)
	OnApprove   func(ctx context.Context, data ApproveData, actions OrderActions) error
	OnError     func(ctx context.Context, err error)
	OnCancel    func(ctx context.Context)
}

// PaymentWidget 외부 결제 버튼 위젯
type PaymentWidget interface {
	// Load 결제 스크립트를 불러옵니다.
	Load(ctx context.Context) error

	// Render 결제 버튼을 표시하고 콜백을 연결합니다.
	Render(ctx context.Context, buttons Buttons) error
}

// InteractiveWidget 서버로 전달된 사용자 동작을 렌더링된 버튼의 콜백으로 전달할 수 있는 위젯
type InteractiveWidget interface {
	PaymentWidget

	CreateOrder(ctx context.Context) (string, error)
	Approve(ctx context.Context, orderID string) error
	Cancel(ctx context.Context)
	Fail(ctx context.Context, err error)
}

// ScriptSource 브라우저에 전달할 결제 스크립트 주소를 제공하는 위젯이 구현합니다.
type ScriptSource interface {
	ScriptURL() string
}

// PaymentConfirmFunc 결제 확정 후 결제 의도를 추가로 생성합니다. 실패하면 결제 확정 실패로 처리됩니다.
type PaymentConfirmFunc func(ctx context.Context, amount float64) error

// Message 사용자에게 표시되는 세션 메시지
type Message struct {
	Text     string                `json:"text"`
	Severity notification.Severity `json:"type"`
}

// Snapshot 세션의 현재 상태. Total은 조회 시점의 장바구니로 다시 계산됩니다.
type Snapshot struct {
	ID        string      `json:"id"`
	State     State       `json:"state"`
	Message   *Message    `json:"message,omitempty"`
	Items     []cart.Line `json:"items"`
	Total     string      `json:"total"`
	Redirect  *Redirect   `json:"redirect,omitempty"`
	OrderID   string      `json:"order_id,omitempty"`
	ScriptURL string      `json:"script_url,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}
