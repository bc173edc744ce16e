// Package errors 스토어프론트 서버 전용 에러 처리 시스템을 제공합니다.
//
// 표준 errors 패키지를 확장하여 타입 기반 에러 분류와 에러 체이닝을 지원합니다.
// 모든 에러는 ErrorType으로 분류되며, HTTP 계층은 UnderlyingType을 사용하여
// 응답 상태 코드를 결정합니다.
//
// # 기본 사용법
//
//	err := errors.New(errors.InvalidInput, "배송 정보의 필수 항목이 누락되었습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.Unavailable, "Shopify 상품 조회 실패")
//	}
//
//	if errors.Is(err, errors.Unavailable) {
//	    // 업스트림 장애: 대체값(Placeholder)으로 성능 저하 처리
//	}
//
// # 에러 분류 기준
//
//   - 업스트림 호출 실패(비-2xx, 네트워크 오류): Unavailable 또는 ExecutionFailed
//   - 잘못된 입력(장바구니 항목 누락, 배송 정보 누락, 0 이하 합계): InvalidInput
//   - 설정 오류(결제 자격 증명 누락): System
//   - 결제 제공자 오류(캡처 실패, 위젯 오류): ExecutionFailed
//
// Wrap 시 원인 에러가 AppError라면 보통 동일한 타입을 유지하고 컨텍스트만 추가합니다.
// 외부 라이브러리 에러(context.DeadlineExceeded, json.SyntaxError 등)를 감쌀 때는
// 에러가 발생한 계층에 맞는 타입을 선택합니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션에서 발생하는 모든 에러를 표준화하여 표현하는 구조체입니다.
type AppError struct {
	errType ErrorType    // 에러의 종류
	message string       // 사용자에게 보여줄 메시지
	cause   error        // 근본 원인 (에러 체이닝)
	stack   []StackFrame // 에러 발생 시점의 호출 스택
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 에러 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 스택 트레이스를 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

// Error 표준 error 인터페이스를 구현합니다.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

// Unwrap 표준 errors.Unwrap 인터페이스를 구현합니다.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v는 메시지, 스택, 원인 체인을 여러 줄로 출력합니다. 그 외 동사는 Error()와 같습니다.
//
// 스택은 체인의 가장 안쪽 AppError에서만 출력합니다. 바깥 AppError의 스택은 같은 호출 경로의 일부이기 때문입니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(s, "%q", e.Error())
		return
	}
	if verb != 'v' || !s.Flag('+') {
		io.WriteString(s, e.Error())
		return
	}

	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	var inner *AppError
	if !errors.As(e.cause, &inner) {
		writeStack(s, e.stack)
	}

	if e.cause == nil {
		return
	}
	fmt.Fprint(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
	} else {
		fmt.Fprintf(s, "\t%v", e.cause)
	}
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	fmt.Fprint(w, "\nStack trace:")
	for _, f := range stack {
		fn := f.Function
		if i := strings.LastIndex(fn, "/"); i != -1 {
			fn = fn[i+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", f.File, f.Line, fn)
	}
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(defaultCallerSkip),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 만들어 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err를 원인으로 하는 새로운 에러를 생성합니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열로 메시지를 만들어 err를 감쌉니다. err가 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인의 AppError 중 errType을 가진 것이 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	found := false
	walk(err, func(e *AppError) bool {
		found = e.errType == errType
		return !found
	})
	return found
}

// As errors.As와 같습니다. 패키지 하나만 import해도 되도록 제공합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
//
// Shopify 호출의 Unavailable 에러를 카탈로그 계층이 Internal로 감싸더라도
// HTTP 응답은 근본 원인인 Unavailable(503)을 기준으로 결정됩니다.
// 체인에 AppError가 없거나 err가 nil이면 Unknown을 반환합니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	walk(err, func(e *AppError) bool {
		t = e.errType
		return true
	})
	return t
}

// walk 체인의 AppError를 바깥쪽부터 차례로 visit에 전달합니다. visit가 false를 반환하면 멈춥니다.
func walk(err error, visit func(*AppError) bool) {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*AppError); ok && !visit(e) {
			return
		}
	}
}
