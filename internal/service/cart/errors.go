package cart

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrCartEmpty 유효한 Line이 하나도 없는 장바구니를 조회했을 때 반환됩니다.
	ErrCartEmpty = apperrors.New(apperrors.NotFound, "장바구니가 비어 있습니다")

	// ErrSlotNotFound 백엔드에 해당 슬롯이 저장되어 있지 않을 때 반환됩니다.
	ErrSlotNotFound = apperrors.New(apperrors.NotFound, "저장된 데이터가 없습니다")

	// ErrPathTraversalDetected 클라이언트 키가 저장 디렉토리를 벗어나는 경로로 해석될 때 반환됩니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.InvalidInput, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrEmptyKey 클라이언트 키가 비어 있을 때 반환됩니다.
	ErrEmptyKey = apperrors.New(apperrors.InvalidInput, "장바구니 키가 비어 있습니다")
)

// NewErrInvalidLine 장바구니 담기 요청의 필수 값이 누락되었을 때의 에러를 생성합니다.
func NewErrInvalidLine(field string) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장바구니에 담을 수 없습니다: 필수 항목(%s)이 누락되었습니다", field))
}

// NewErrCorruptedSlot 저장된 데이터를 해석할 수 없을 때의 에러를 생성합니다.
func NewErrCorruptedSlot(err error, slot string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("저장된 데이터(%s)를 해석할 수 없습니다", slot))
}

func newErrEncodeFailed(err error, slot string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("데이터(%s) 직렬화 중 오류가 발생했습니다", slot))
}

func newErrStorageIO(err error, op string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("장바구니 저장소 %s 중 오류가 발생했습니다", op))
}
