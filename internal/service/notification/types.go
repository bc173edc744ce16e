package notification

import (
	"time"
)

// Severity 알림의 심각도. 화면에 표시되는 알림의 색상과 운영자 전달 여부를 결정합니다.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// DefaultDuration 알림이 자동으로 닫히기까지의 기본 시간
const DefaultDuration = 2 * time.Second

func (s Severity) rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityDanger:
		return 2
	default:
		return 0
	}
}

// AtLeast 심각도가 min 이상인지 확인합니다. info와 success는 같은 순위입니다.
func (s Severity) AtLeast(min Severity) bool {
	return s.rank() >= min.rank()
}

// Notification 사용자에게 표시할 일시적인 알림
type Notification struct {
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"duration"`
}

// New 기본 표시 시간을 가진 알림을 생성합니다.
func New(message string, severity Severity) Notification {
	return Notification{
		Message:  message,
		Severity: severity,
		Duration: DefaultDuration,
	}
}
