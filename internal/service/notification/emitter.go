// Package notification 사용자 알림(토스트)과 운영자 알림을 전달하는 Emitter 구현체들을 제공합니다.
package notification

import (
	"context"
	"errors"
	"sync"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const component = "notification"

// Emitter 알림을 전달하는 대상
type Emitter interface {
	Emit(ctx context.Context, n Notification) error
}

// EmitterFunc 일반 함수를 Emitter로 사용할 수 있도록 하는 어댑터
type EmitterFunc func(ctx context.Context, n Notification) error

func (f EmitterFunc) Emit(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// LogEmitter 알림을 애플리케이션 로그로 남깁니다.
type LogEmitter struct{}

var _ Emitter = LogEmitter{}

func (LogEmitter) Emit(_ context.Context, n Notification) error {
	entry := applog.WithComponentAndFields(component, applog.Fields{
		"severity": n.Severity,
		"duration": n.Duration.String(),
	})

	switch n.Severity {
	case SeverityDanger:
		entry.Error(n.Message)
	case SeverityWarning:
		entry.Warn(n.Message)
	default:
		entry.Info(n.Message)
	}

	return nil
}

// Recorder 전달된 알림을 메모리에 순서대로 보관합니다.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

var _ Emitter = (*Recorder)(nil)

// NewRecorder 새로운 Recorder를 생성합니다.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
	return nil
}

// All 지금까지 전달된 알림의 복사본
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notification(nil), r.notifications...)
}

// Last 마지막으로 전달된 알림. 없으면 false를 반환합니다.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Fanout 하나의 알림을 여러 Emitter에 전달합니다.
type Fanout []Emitter

var _ Emitter = Fanout(nil)

// Emit 모든 Emitter에 알림을 전달합니다. 일부가 실패해도 나머지에는 계속 전달하며, 실패한 에러들을 합쳐서 반환합니다.
func (f Fanout) Emit(ctx context.Context, n Notification) error {
	var errs []error
	for _, e := range f {
		if e == nil {
			continue
		}
		if err := e.Emit(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
