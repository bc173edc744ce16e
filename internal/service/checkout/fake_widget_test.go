package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// fakeActions 결제 확정 결과를 지정할 수 있는 OrderActions
type fakeActions struct {
	result CaptureResult
	err    error
}

func (a fakeActions) Capture(context.Context) (CaptureResult, error) {
	return a.result, a.err
}

// fakeWidget 외부 스크립트 없이 콜백을 직접 호출하는 InteractiveWidget
type fakeWidget struct {
	loadErr   error
	renderErr error
	capture   fakeActions

	// loadGate 설정되면 Load가 이 채널이 닫힐 때까지 대기합니다.
	loadGate chan struct{}

	loads   atomic.Int32
	renders atomic.Int32

	mu      sync.Mutex
	buttons *Buttons
}

var _ InteractiveWidget = (*fakeWidget)(nil)

func (w *fakeWidget) Load(ctx context.Context) error {
	w.loads.Add(1)
	if w.loadGate != nil {
		select {
		case <-w.loadGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return w.loadErr
}

func (w *fakeWidget) Render(_ context.Context, b Buttons) error {
	w.renders.Add(1)
	if w.renderErr != nil {
		return w.renderErr
	}

	w.mu.Lock()
	w.buttons = &b
	w.mu.Unlock()
	return nil
}

func (w *fakeWidget) rendered() (*Buttons, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buttons == nil {
		return nil, errors.New("not rendered")
	}
	return w.buttons, nil
}

func (w *fakeWidget) CreateOrder(ctx context.Context) (string, error) {
	b, err := w.rendered()
	if err != nil {
		return "", err
	}
	unit, err := b.CreateOrder(ctx)
	if err != nil {
		return "", err
	}
	return "ORDER-" + unit.Amount.Value, nil
}

func (w *fakeWidget) Approve(ctx context.Context, orderID string) error {
	b, err := w.rendered()
	if err != nil {
		return err
	}
	return b.OnApprove(ctx, ApproveData{OrderID: orderID}, w.capture)
}

func (w *fakeWidget) Cancel(ctx context.Context) {
	if b, err := w.rendered(); err == nil {
		b.OnCancel(ctx)
	}
}

func (w *fakeWidget) Fail(ctx context.Context, cause error) {
	if b, err := w.rendered(); err == nil {
		b.OnError(ctx, cause)
	}
}
