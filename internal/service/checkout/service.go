package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/pkg/idgen"
	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const defaultSessionTTL = 30 * time.Minute

// WidgetFactory 세션마다 새로운 결제 위젯을 생성합니다.
type WidgetFactory func() PaymentWidget

// Config Service 생성 설정
type Config struct {
	Store     cart.Store
	NewWidget WidgetFactory
	Emitter   notification.Emitter

	// Redirector nil이면 RecordingRedirector를 사용합니다.
	Redirector Redirector

	// ConfirmPayment 설정되면 결제 확정 직후 호출됩니다.
	ConfirmPayment PaymentConfirmFunc

	// SessionTTL 마지막 활동 이후 이 시간이 지난 세션은 Sweep에서 제거됩니다.
	SessionTTL time.Duration

	Options Options
}

// Service 체크아웃 세션 저장소
type Service struct {
	cfg Config
	ids *idgen.Generator

	mu       sync.RWMutex
	sessions map[string]*Orchestrator

	now func() time.Time
}

// NewService 새로운 Service를 생성합니다.
func NewService(cfg Config) *Service {
	if cfg.Emitter == nil {
		cfg.Emitter = notification.LogEmitter{}
	}
	if cfg.Redirector == nil {
		cfg.Redirector = NewRecordingRedirector()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	return &Service{
		cfg:      cfg,
		ids:      idgen.NewGenerator(),
		sessions: make(map[string]*Orchestrator),
		now:      time.Now,
	}
}

// Create 장바구니 키에 대한 새 세션을 만들고 시작한 뒤 스냅샷을 반환합니다.
func (s *Service) Create(ctx context.Context, cartKey string) (Snapshot, error) {
	if strings.TrimSpace(cartKey) == "" {
		return Snapshot{}, ErrEmptyCartKey
	}

	o := NewOrchestrator(s.ids.New(), cartKey, s.cfg.Store, s.cfg.NewWidget(), s.cfg.Emitter, s.cfg.Redirector, s.cfg.Options)
	if s.cfg.ConfirmPayment != nil {
		o.SetPaymentConfirm(s.cfg.ConfirmPayment)
	}

	s.mu.Lock()
	s.sessions[o.ID()] = o
	s.mu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"session_id": o.ID(),
		"cart_key":   cartKey,
	}).Info("체크아웃 세션 생성")

	if err := o.Start(ctx); err != nil {
		s.mu.Lock()
		delete(s.sessions, o.ID())
		s.mu.Unlock()

		return Snapshot{}, err
	}

	return o.Snapshot(ctx)
}

// Get 세션을 조회합니다.
func (s *Service) Get(id string) (*Orchestrator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return o, nil
}

// Snapshot 세션의 현재 상태를 반환합니다.
func (s *Service) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	o, err := s.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return o.Snapshot(ctx)
}

// ConfirmManual 배송 정보로 주문을 확정합니다. 검증에 실패해도 세션의 스냅샷을 함께 반환합니다.
func (s *Service) ConfirmManual(ctx context.Context, id string, info ShippingInfo) (Snapshot, error) {
	o, err := s.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	confirmErr := o.ConfirmManual(ctx, info)

	snap, err := o.Snapshot(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, confirmErr
}

// CreatePaymentOrder 결제 위젯으로 결제 주문을 생성하고 주문 ID를 반환합니다.
func (s *Service) CreatePaymentOrder(ctx context.Context, id string) (string, error) {
	w, err := s.interactive(id)
	if err != nil {
		return "", err
	}
	return w.CreateOrder(ctx)
}

// ApprovePayment 승인된 결제 주문을 확정합니다.
func (s *Service) ApprovePayment(ctx context.Context, id, orderID string) (Snapshot, error) {
	return s.dispatch(ctx, id, func(w InteractiveWidget) error {
		return w.Approve(ctx, orderID)
	})
}

// CancelPayment 사용자가 결제를 취소했음을 알립니다.
func (s *Service) CancelPayment(ctx context.Context, id string) (Snapshot, error) {
	return s.dispatch(ctx, id, func(w InteractiveWidget) error {
		w.Cancel(ctx)
		return nil
	})
}

// FailPayment 결제 위젯에서 에러가 발생했음을 알립니다.
func (s *Service) FailPayment(ctx context.Context, id string, cause error) (Snapshot, error) {
	return s.dispatch(ctx, id, func(w InteractiveWidget) error {
		w.Fail(ctx, cause)
		return nil
	})
}

func (s *Service) dispatch(ctx context.Context, id string, fn func(InteractiveWidget) error) (Snapshot, error) {
	w, err := s.interactive(id)
	if err != nil {
		return Snapshot{}, err
	}

	actionErr := fn(w)

	snap, err := s.Snapshot(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, actionErr
}

func (s *Service) interactive(id string) (InteractiveWidget, error) {
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	w, ok := o.Widget().(InteractiveWidget)
	if !ok {
		return nil, ErrWidgetNotInteractive
	}
	return w, nil
}

// Len 보관 중인 세션의 개수
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep 마지막 활동 이후 SessionTTL이 지난 세션을 제거하고 제거한 개수를 반환합니다.
func (s *Service) Sweep() int {
	cutoff := s.now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for id, o := range s.sessions {
		if o.lastActivity().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"removed":   removed,
			"remaining": len(s.sessions),
		}).Info("만료된 체크아웃 세션 정리")
	}

	return removed
}
