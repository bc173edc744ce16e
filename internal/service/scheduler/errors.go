package scheduler

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

// ErrNoJobs 등록할 작업이 하나도 없을 때 반환됩니다.
var ErrNoJobs = apperrors.New(apperrors.Internal, "등록할 정리 작업이 없습니다")

// NewErrInvalidCronSpec Cron 표현식이 올바르지 않아 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidCronSpec(job, spec string, cause error) error {
	return apperrors.Wrap(cause, apperrors.InvalidInput, fmt.Sprintf("스케줄 등록 실패: 잘못된 Cron 표현식입니다 (Job=%s, Spec='%s')", job, spec))
}
