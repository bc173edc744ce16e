package payment

import (
	"context"
	"sync"

	"github.com/darkkaiser/storefront-server/internal/service/checkout"
)

// Widget 체크아웃 세션 하나에 연결되는 PayPal 결제 버튼
//
// 브라우저의 PayPal 버튼이 보내는 동작(주문 생성, 승인, 취소, 에러)을 서버에서 받아 렌더링 시 등록된 콜백으로 전달합니다.
type Widget struct {
	client *Client

	mu      sync.Mutex
	loaded  bool
	buttons *checkout.Buttons
}

var (
	_ checkout.InteractiveWidget = (*Widget)(nil)
	_ checkout.ScriptSource      = (*Widget)(nil)
)

// NewWidget 새로운 Widget을 생성합니다.
func (c *Client) NewWidget() *Widget {
	return &Widget{client: c}
}

// Load 자격 증명을 확인하고 액세스 토큰을 발급받습니다. 자격 증명이 없으면 즉시 실패합니다.
func (w *Widget) Load(ctx context.Context) error {
	w.mu.Lock()
	if w.loaded {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	if _, err := w.client.AccessToken(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	w.loaded = true
	w.mu.Unlock()

	return nil
}

func (w *Widget) Render(_ context.Context, buttons checkout.Buttons) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loaded {
		return ErrNotLoaded
	}
	w.buttons = &buttons
	return nil
}

func (w *Widget) ScriptURL() string {
	return w.client.ScriptURL()
}

func (w *Widget) rendered() (*checkout.Buttons, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buttons == nil {
		return nil, ErrNotRendered
	}
	return w.buttons, nil
}

// CreateOrder 세션의 구매 단위로 PayPal 결제 주문을 생성합니다.
func (w *Widget) CreateOrder(ctx context.Context) (string, error) {
	b, err := w.rendered()
	if err != nil {
		return "", err
	}

	unit, err := b.CreateOrder(ctx)
	if err != nil {
		return "", err
	}

	return w.client.CreateOrder(ctx, unit)
}

// Approve 사용자가 승인한 결제 주문을 세션의 승인 콜백으로 전달합니다.
func (w *Widget) Approve(ctx context.Context, orderID string) error {
	b, err := w.rendered()
	if err != nil {
		return err
	}

	return b.OnApprove(ctx, checkout.ApproveData{OrderID: orderID}, orderActions{client: w.client, orderID: orderID})
}

func (w *Widget) Cancel(ctx context.Context) {
	if b, err := w.rendered(); err == nil {
		b.OnCancel(ctx)
	}
}

func (w *Widget) Fail(ctx context.Context, cause error) {
	if b, err := w.rendered(); err == nil {
		b.OnError(ctx, cause)
	}
}

// orderActions 승인된 주문 하나에 대한 PayPal 동작
type orderActions struct {
	client  *Client
	orderID string
}

func (a orderActions) Capture(ctx context.Context) (checkout.CaptureResult, error) {
	return a.client.CaptureOrder(ctx, a.orderID)
}
