package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/notification"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// DefaultRedirectDelay 페이지 이동 전 대기 시간의 기본값
const DefaultRedirectDelay = 2 * time.Second

// Redirect 예약된 페이지 이동
type Redirect struct {
	Target string    `json:"target"`
	DueAt  time.Time `json:"due_at"`
}

// Redirector 일정 시간 후의 페이지 이동을 예약합니다.
type Redirector interface {
	Schedule(ctx context.Context, sessionID, target string, delay time.Duration) Redirect
}

// RecordingRedirector 예약된 이동을 기록만 합니다. 실제 이동은 스냅샷을 받은 클라이언트가 수행합니다.
type RecordingRedirector struct {
	mu        sync.Mutex
	redirects map[string]Redirect

	now func() time.Time
}

var _ Redirector = (*RecordingRedirector)(nil)

// NewRecordingRedirector 새로운 RecordingRedirector를 생성합니다.
func NewRecordingRedirector() *RecordingRedirector {
	return &RecordingRedirector{
		redirects: make(map[string]Redirect),
		now:       time.Now,
	}
}

func (r *RecordingRedirector) Schedule(_ context.Context, sessionID, target string, delay time.Duration) Redirect {
	rd := Redirect{Target: target, DueAt: r.now().Add(delay)}

	r.mu.Lock()
	r.redirects[sessionID] = rd
	r.mu.Unlock()

	return rd
}

// Scheduled 세션에 예약된 이동
func (r *RecordingRedirector) Scheduled(sessionID string) (Redirect, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rd, ok := r.redirects[sessionID]
	return rd, ok
}

// TimerRedirector 지정된 시간이 지나면 이동 알림을 전달합니다.
type TimerRedirector struct {
	emitter notification.Emitter

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

var _ Redirector = (*TimerRedirector)(nil)

// NewTimerRedirector 새로운 TimerRedirector를 생성합니다.
func NewTimerRedirector(emitter notification.Emitter) *TimerRedirector {
	return &TimerRedirector{
		emitter: emitter,
		timers:  make(map[string]*time.Timer),
	}
}

// Schedule 같은 세션에 이미 예약된 이동이 있으면 취소하고 새로 예약합니다.
func (r *TimerRedirector) Schedule(_ context.Context, sessionID, target string, delay time.Duration) Redirect {
	rd := Redirect{Target: target, DueAt: time.Now().Add(delay)}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return rd
	}
	if t, ok := r.timers[sessionID]; ok {
		t.Stop()
	}

	r.timers[sessionID] = time.AfterFunc(delay, func() {
		defer func() {
			if p := recover(); p != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"session_id": sessionID,
					"panic":      p,
				}).Error("페이지 이동 알림 중 패닉 발생")
			}
		}()

		r.mu.Lock()
		delete(r.timers, sessionID)
		r.mu.Unlock()

		_ = r.emitter.Emit(context.Background(), notification.New(fmt.Sprintf("Redirecting to %s", target), notification.SeverityInfo))
	})

	return rd
}

// Pending 아직 실행되지 않은 예약의 개수
func (r *TimerRedirector) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop 예약된 모든 이동을 취소하고 이후의 예약을 무시합니다.
func (r *TimerRedirector) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
	r.stopped = true
}
