// Package mark 운영자 알림 메시지 앞에 붙이는 이모지 표식을 정의합니다.
package mark

// Mark 이모지 표식
type Mark string

const (
	// Info 일반 안내
	Info Mark = "ℹ️"

	// Success 결제 완료, 주문 확정
	Success Mark = "✅"

	// Warning 재시도 가능한 실패
	Warning Mark = "⚠️"

	// Alert 서버 오류, 결제 실패
	Alert Mark = "🚨"
)

// WithSpace 표식 뒤에 공백을 붙여 반환합니다. 빈 표식이면 빈 문자열입니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return string(m) + " "
}

func (m Mark) String() string {
	return string(m)
}
