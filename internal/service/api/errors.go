package api

import (
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrServiceAlreadyRunning 이미 실행 중인 서비스를 다시 시작하려고 할 때 반환하는 에러입니다.
	ErrServiceAlreadyRunning = apperrors.New(apperrors.Conflict, "API 서비스가 이미 실행 중입니다")
)
