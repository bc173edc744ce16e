package catalog

import (
	"fmt"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

var (
	// ErrProductNotFound 응답에 상품이 없을 때 반환됩니다.
	ErrProductNotFound = apperrors.New(apperrors.NotFound, "상품을 찾을 수 없습니다")

	// ErrCacheMiss 캐시에 항목이 없거나 만료되었을 때 반환됩니다.
	ErrCacheMiss = apperrors.New(apperrors.NotFound, "캐시 항목이 없습니다")

	// ErrUpstreamUnavailable 회로 차단기가 열려 업스트림 호출이 차단되었을 때 반환됩니다.
	ErrUpstreamUnavailable = apperrors.New(apperrors.Unavailable, "Shopify API를 일시적으로 사용할 수 없습니다")
)

// NewErrInvalidResponse 업스트림 응답의 형식이 예상과 다를 때의 에러를 생성합니다.
func NewErrInvalidResponse(path, details string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("Shopify 응답(%s)의 형식이 올바르지 않습니다: %s", path, details))
}

// NewErrProductNotFound 특정 상품 ID에 대한 ErrProductNotFound를 생성합니다.
func NewErrProductNotFound(id string) error {
	return apperrors.Wrap(ErrProductNotFound, apperrors.NotFound, fmt.Sprintf("상품(%s)을 찾을 수 없습니다", id))
}
