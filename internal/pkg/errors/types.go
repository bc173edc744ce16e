package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// HTTP 계층은 이 값을 기준으로 응답 상태 코드를 결정하고, 카탈로그/결제 계층은
// 업스트림 장애(Unavailable, ExecutionFailed)를 구분하여 성능 저하(Degrade) 여부를 판단합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 예상하지 못한 상태 전이 등)
	Internal

	// System 시스템/설정 오류 (디스크 I/O, 결제 자격 증명 누락 등)
	System

	// Unauthorized 인증 실패 (업스트림 API 토큰 거부 등)
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값 (장바구니 필수 항목 누락, 배송 정보 누락 등)
	InvalidInput

	// Conflict 상태 충돌 (이미 종료된 체크아웃 세션에 대한 요청 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 호출 또는 결제 처리 실패
	ExecutionFailed

	// ParsingFailed 업스트림 응답 파싱 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 업스트림 서비스 일시적 사용 불가 (5xx, 429, 회로 차단 등)
	Unavailable
)
