package fetcher

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrMaxRetriesExceeded 최대 재시도 횟수를 모두 소진했을 때 반환됩니다.
	ErrMaxRetriesExceeded = apperrors.New(apperrors.Unavailable, "최대 재시도 횟수를 초과하였습니다")

	// ErrResponseBodyTooLarge 응답 본문이 허용된 크기를 초과했을 때 반환됩니다.
	ErrResponseBodyTooLarge = apperrors.New(apperrors.ExecutionFailed, "응답 본문의 크기가 허용된 제한을 초과하였습니다")
)

func newErrMaxRetriesExceeded(cause error) error {
	if cause == nil {
		return ErrMaxRetriesExceeded
	}
	return apperrors.Wrap(cause, apperrors.Unavailable, ErrMaxRetriesExceeded.Error())
}

func newErrRetryAfterExceeded(retryAfter, maxDelay string) error {
	return apperrors.New(apperrors.Unavailable, fmt.Sprintf("서버가 요구한 재시도 대기 시간(%s)이 허용된 최대 대기 시간(%s)을 초과하여 재시도를 중단합니다", retryAfter, maxDelay))
}

func newErrGetBodyFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "재시도를 위한 요청 본문 재생성에 실패하였습니다")
}

// NewErrResponseBodyTooLarge 실제 읽은 바이트 수가 제한을 초과했을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrap(ErrResponseBodyTooLarge, apperrors.ExecutionFailed, fmt.Sprintf("응답 본문이 %d 바이트 제한을 초과하였습니다", limit))
}

// NewErrResponseBodyTooLargeByContentLength Content-Length 헤더 값이 제한을 초과했을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.Wrap(ErrResponseBodyTooLarge, apperrors.ExecutionFailed, fmt.Sprintf("응답 본문의 크기(Content-Length: %d)가 %d 바이트 제한을 초과하였습니다", contentLength, limit))
}
