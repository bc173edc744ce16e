// Package checkout 장바구니를 주문으로 확정하는 체크아웃 세션의 상태 머신을 구현합니다.
//
// 외부 결제 위젯은 PaymentWidget으로 주입되며, 위젯은 Buttons 콜백(CreateOrder, OnApprove, OnError, OnCancel)을
// 호출하여 상태를 전이시킵니다. 결제 없이 배송 정보만으로 주문을 확정하는 수동 확정 경로도 제공합니다.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "checkout"

const (
	defaultEmptyCartRedirect    = "/products"
	defaultConfirmationRedirect = "/order-confirmation"
	defaultCurrency             = "USD"
)

// widgetLoadState 결제 스크립트 로드 진행 상태
type widgetLoadState int

const (
	widgetIdle widgetLoadState = iota
	widgetLoading
	widgetLoaded
	widgetFailed
)

// Options 세션 동작 설정
type Options struct {
	// RedirectDelay 페이지 이동 전 대기 시간. 0이면 2초입니다.
	RedirectDelay time.Duration

	EmptyCartRedirect    string
	ConfirmationRedirect string

	// NotificationDuration 알림의 자동 닫힘 시간. 0이면 notification.DefaultDuration입니다.
	NotificationDuration time.Duration
}

func (o Options) withDefaults() Options {
	if o.RedirectDelay <= 0 {
		o.RedirectDelay = DefaultRedirectDelay
	}
	if o.EmptyCartRedirect == "" {
		o.EmptyCartRedirect = defaultEmptyCartRedirect
	}
	if o.ConfirmationRedirect == "" {
		o.ConfirmationRedirect = defaultConfirmationRedirect
	}
	if o.NotificationDuration <= 0 {
		o.NotificationDuration = notification.DefaultDuration
	}
	return o
}

// Orchestrator 체크아웃 세션 하나의 상태 머신
//
// 결제 스크립트 로드와 버튼 렌더링은 Start가 여러 번 호출되어도 각각 한 번만 수행됩니다.
// 합계 금액은 캐시하지 않고 필요할 때마다 장바구니 저장소에서 다시 계산합니다.
type Orchestrator struct {
	id      string
	cartKey string

	store      cart.Store
	widget     PaymentWidget
	emitter    notification.Emitter
	redirector Redirector
	confirm    PaymentConfirmFunc
	opts       Options
	now        func() time.Time

	mu          sync.Mutex
	state       State
	message     *Message
	widgetState widgetLoadState
	rendered    bool
	redirect    *Redirect
	orderID     string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewOrchestrator 새로운 세션을 loading-cart 상태로 생성합니다.
func NewOrchestrator(id, cartKey string, store cart.Store, widget PaymentWidget, emitter notification.Emitter, redirector Redirector, opts Options) *Orchestrator {
	if emitter == nil {
		emitter = notification.LogEmitter{}
	}
	if redirector == nil {
		redirector = NewRecordingRedirector()
	}

	now := time.Now()
	return &Orchestrator{
		id:         id,
		cartKey:    cartKey,
		store:      store,
		widget:     widget,
		emitter:    emitter,
		redirector: redirector,
		opts:       opts.withDefaults(),
		now:        time.Now,
		state:      StateLoadingCart,
		createdAt:  now,
		updatedAt:  now,
	}
}

// SetPaymentConfirm 결제 확정 직후 호출할 결제 의도 생성 함수를 설정합니다.
func (o *Orchestrator) SetPaymentConfirm(fn PaymentConfirmFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirm = fn
}

// ID 세션 식별자
func (o *Orchestrator) ID() string {
	return o.id
}

// Widget 세션에 주입된 결제 위젯
func (o *Orchestrator) Widget() PaymentWidget {
	return o.widget
}

// State 현재 상태
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// lastActivity 마지막으로 상태나 메시지가 바뀐 시각
func (o *Orchestrator) lastActivity() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.updatedAt
}

// Start 장바구니를 읽고, 비어 있으면 상품 목록으로의 이동을 예약합니다.
// 비어 있지 않으면 결제 스크립트를 불러온 뒤 결제 버튼을 렌더링하여 payment-ready 상태로 전이합니다.
//
// 장바구니 저장소 에러만 반환하며, 위젯 로드 실패는 세션 메시지로 보고하고 재시도하지 않습니다.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()

	if o.state.Terminal() {
		o.mu.Unlock()
		return nil
	}

	c, err := o.store.Load(ctx, o.cartKey)
	if err != nil {
		if errors.Is(err, cart.ErrCartEmpty) && o.state == StateLoadingCart {
			o.transition(StateEmptyCartRedirect)
			o.notify(ctx, msgCartEmpty, notification.SeverityWarning)
			o.scheduleRedirect(ctx, o.opts.EmptyCartRedirect)
			o.mu.Unlock()
			return nil
		}
		o.mu.Unlock()
		if errors.Is(err, cart.ErrCartEmpty) {
			return nil
		}
		return err
	}

	if o.state == StateLoadingCart {
		o.transition(StateAwaitingPaymentWidget)
	}

	if o.widgetState == widgetIdle {
		o.widgetState = widgetLoading
		o.mu.Unlock()

		loadErr := o.widget.Load(ctx)

		o.mu.Lock()
		if loadErr != nil {
			o.widgetState = widgetFailed
			o.reportLoadFailure(ctx, loadErr)
			o.mu.Unlock()
			return nil
		}
		o.widgetState = widgetLoaded
	}

	if o.widgetState != widgetLoaded || o.rendered || c.IsEmpty() {
		o.mu.Unlock()
		return nil
	}
	o.rendered = true
	o.mu.Unlock()

	if err := o.widget.Render(ctx, o.buttons()); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": o.id,
			"error":      err,
		}).Error("결제 버튼 렌더링 실패")

		o.mu.Lock()
		o.notify(ctx, msgWidgetLoadFailed, notification.SeverityDanger)
		o.mu.Unlock()
		return nil
	}

	o.mu.Lock()
	if o.state == StateAwaitingPaymentWidget {
		o.transition(StatePaymentReady)
	}
	o.mu.Unlock()

	return nil
}

func (o *Orchestrator) reportLoadFailure(ctx context.Context, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.id,
		"error":      err,
	}).Error("결제 스크립트 로드 실패")

	if apperrors.Is(err, apperrors.System) {
		o.notify(ctx, msgClientIDMissing, notification.SeverityDanger)
		return
	}
	o.notify(ctx, msgWidgetLoadFailed, notification.SeverityDanger)
}

// ConfirmManual 결제 없이 배송 정보로 주문을 확정합니다.
//
// 필수 배송 정보가 없거나 합계가 0 이하이면 경고 메시지만 남기고 상태는 바꾸지 않습니다.
// 성공하면 주문을 lastOrder 슬롯에 기록하고 장바구니를 비운 뒤 주문 확인 페이지로의 이동을 예약합니다.
func (o *Orchestrator) ConfirmManual(ctx context.Context, info ShippingInfo) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateCapturingPayment || o.state.Terminal() {
		return NewErrInvalidState(o.state, "주문 확정")
	}

	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Address) == "" || strings.TrimSpace(info.City) == "" {
		o.notify(ctx, msgShippingIncomplete, notification.SeverityWarning)
		return ErrShippingIncomplete
	}

	c, err := o.store.Load(ctx, o.cartKey)
	if err != nil && !errors.Is(err, cart.ErrCartEmpty) {
		return err
	}
	if c.Total() <= 0 {
		o.notify(ctx, msgNonPositiveTotal, notification.SeverityWarning)
		return ErrNonPositiveTotal
	}

	order := Order{
		CartItems:    c.Lines,
		ShippingInfo: info,
		TotalPrice:   c.TotalString(),
		OrderDate:    o.now().UTC().Format(time.RFC3339Nano),
	}
	if err := o.store.SaveOrder(ctx, o.cartKey, order); err != nil {
		return err
	}
	if err := o.store.Clear(ctx, o.cartKey); err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.id,
		"total":      order.TotalPrice,
		"lines":      len(order.CartItems),
	}).Info("주문 확정 완료")

	o.transition(StateManualConfirmation)
	o.notify(ctx, msgOrderConfirmed, notification.SeveritySuccess)
	o.scheduleRedirect(ctx, o.opts.ConfirmationRedirect)

	return nil
}

// Snapshot 현재 상태를 반환합니다. 장바구니와 합계는 조회 시점에 다시 읽습니다.
func (o *Orchestrator) Snapshot(ctx context.Context) (Snapshot, error) {
	c, err := o.store.Load(ctx, o.cartKey)
	if err != nil && !errors.Is(err, cart.ErrCartEmpty) {
		return Snapshot{}, err
	}

	items := c.Lines
	if items == nil {
		items = []cart.Line{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s := Snapshot{
		ID:        o.id,
		State:     o.state,
		Items:     items,
		Total:     c.TotalString(),
		OrderID:   o.orderID,
		UpdatedAt: o.updatedAt,
	}
	if o.message != nil {
		m := *o.message
		s.Message = &m
	}
	if o.redirect != nil {
		r := *o.redirect
		s.Redirect = &r
	}
	if src, ok := o.widget.(ScriptSource); ok && o.widgetState == widgetLoaded {
		s.ScriptURL = src.ScriptURL()
	}

	return s, nil
}

// buttons 위젯에 연결할 콜백 묶음
func (o *Orchestrator) buttons() Buttons {
	return Buttons{
		CreateOrder: o.createOrder,
		OnApprove:   o.onApprove,
		OnError:     o.onError,
		OnCancel:    o.onCancel,
	}
}

func (o *Orchestrator) createOrder(ctx context.Context) (PurchaseUnit, error) {
	o.mu.Lock()
	state := o.state
	o.mu.Unlock()

	if !payable(state) {
		return PurchaseUnit{}, NewErrInvalidState(state, "결제 주문 생성")
	}

	c, err := o.store.Load(ctx, o.cartKey)
	if err != nil {
		return PurchaseUnit{}, err
	}

	return PurchaseUnit{
		Amount: Amount{
			CurrencyCode: defaultCurrency,
			Value:        c.TotalString(),
		},
	}, nil
}

func (o *Orchestrator) onApprove(ctx context.Context, data ApproveData, actions OrderActions) error {
	o.mu.Lock()
	if !payable(o.state) {
		state := o.state
		o.mu.Unlock()
		return NewErrInvalidState(state, "결제 승인")
	}
	o.transition(StateCapturingPayment)
	confirm := o.confirm
	o.mu.Unlock()

	result, err := o.capture(ctx, actions, confirm)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": o.id,
			"order_id":   data.OrderID,
			"error":      err,
		}).Error("결제 확정 실패")

		o.transition(StatePaymentFailed)
		o.notify(ctx, msgPaymentCaptureFailed, notification.SeverityDanger)
		return err
	}

	o.orderID = result.ID
	if err := o.store.Clear(ctx, o.cartKey); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": o.id,
			"error":      err,
		}).Error("결제 완료 후 장바구니 비우기 실패")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.id,
		"order_id":   result.ID,
	}).Info("결제 완료")

	o.transition(StatePaymentSucceeded)
	o.notify(ctx, fmt.Sprintf(msgPaymentCompletedFmt, result.ID), notification.SeveritySuccess)
	o.scheduleRedirect(ctx, o.opts.ConfirmationRedirect)

	return nil
}

// capture 결제를 확정하고, 설정된 경우 결제 의도를 추가로 생성합니다.
func (o *Orchestrator) capture(ctx context.Context, actions OrderActions, confirm PaymentConfirmFunc) (result CaptureResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("결제 확정 중 패닉 발생: %v", r))
		}
	}()

	if actions == nil {
		return CaptureResult{}, apperrors.New(apperrors.ExecutionFailed, "결제 확정 동작이 제공되지 않았습니다")
	}

	result, err = actions.Capture(ctx)
	if err != nil {
		return CaptureResult{}, err
	}

	if confirm != nil {
		c, err := o.store.Load(ctx, o.cartKey)
		if err != nil {
			return CaptureResult{}, err
		}
		if err := confirm(ctx, c.Total()); err != nil {
			return CaptureResult{}, err
		}
	}

	return result, nil
}

func (o *Orchestrator) onError(ctx context.Context, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.id,
		"error":      err,
	}).Error("결제 위젯 에러")

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Terminal() {
		return
	}
	o.transition(StatePaymentFailed)
	o.notify(ctx, msgPaymentFailed, notification.SeverityDanger)
}

func (o *Orchestrator) onCancel(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Terminal() {
		return
	}
	o.transition(StatePaymentCancelled)
	o.notify(ctx, msgPaymentCancelled, notification.SeverityInfo)
}

// payable 결제 주문 생성과 승인이 가능한 상태인지 확인합니다. 실패나 취소 후에는 다시 결제할 수 있습니다.
func payable(s State) bool {
	return s == StatePaymentReady || s == StatePaymentFailed || s == StatePaymentCancelled
}

// transition mu를 잡은 상태에서 호출해야 합니다.
func (o *Orchestrator) transition(to State) {
	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.id,
		"from":       o.state,
		"to":         to,
	}).Debug("체크아웃 상태 전이")

	o.state = to
	o.updatedAt = o.now()
}

// notify mu를 잡은 상태에서 호출해야 합니다.
func (o *Orchestrator) notify(ctx context.Context, text string, severity notification.Severity) {
	o.message = &Message{Text: text, Severity: severity}
	o.updatedAt = o.now()

	n := notification.Notification{
		Message:  text,
		Severity: severity,
		Duration: o.opts.NotificationDuration,
	}
	if err := o.emitter.Emit(ctx, n); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"session_id": o.id,
			"error":      err,
		}).Warn("알림 전달 실패")
	}
}

// scheduleRedirect mu를 잡은 상태에서 호출해야 합니다.
func (o *Orchestrator) scheduleRedirect(ctx context.Context, target string) {
	rd := o.redirector.Schedule(ctx, o.id, target, o.opts.RedirectDelay)
	o.redirect = &rd
}
