package notification

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrQueueFull 텔레그램 전송 대기열이 가득 찼을 때 반환됩니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 전송 대기열이 가득 찼습니다")

	// ErrNotRunning 전송 워커가 실행 중이 아닐 때 반환됩니다.
	ErrNotRunning = apperrors.New(apperrors.Unavailable, "알림 전송 워커가 실행 중이 아닙니다")
)

func newErrBotInitFailed(err error) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
}
