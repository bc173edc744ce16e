package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"slices"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

const maxBodySnippetBytes = 4096

// HTTPStatusError HTTP 요청 실패 시 상태 코드와 응답 정보를 포함하는 구조화된 에러입니다.
//
// Cause에는 상태 코드에 따라 분류된 apperrors.AppError가 저장되므로,
// apperrors.Is(err, apperrors.Unavailable)와 같은 분류 검사를 그대로 사용할 수 있습니다.
type HTTPStatusError struct {
	StatusCode int
	Status     string

	// URL 민감 정보가 마스킹된 요청 URL
	URL string

	// Header 민감 헤더가 마스킹된 응답 헤더
	Header http.Header

	// BodySnippet 응답 본문의 앞부분 (최대 4KB)
	BodySnippet string

	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// CheckResponseStatus 응답 상태 코드가 허용 목록에 없으면 HTTPStatusError를 반환합니다.
// 허용 목록이 비어 있으면 2xx 전체를 허용합니다.
//
// 응답 본문의 일부를 읽어 에러에 포함하므로, 에러가 반환된 뒤에는 본문을 다시 사용할 수 없습니다.
func CheckResponseStatus(resp *http.Response, allowed ...int) error {
	if len(allowed) == 0 {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
	} else if slices.Contains(allowed, resp.StatusCode) {
		return nil
	}

	var snippet string
	if resp.Body != nil {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		snippet = string(b)
	}

	var reqURL string
	if resp.Request != nil {
		reqURL = redactURL(resp.Request.URL)
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         reqURL,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
		Cause:       apperrors.New(classifyStatus(resp.StatusCode), fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %s", resp.Status)),
	}
}

// classifyStatus HTTP 상태 코드를 에러 타입으로 분류합니다.
func classifyStatus(code int) apperrors.ErrorType {
	switch {
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return apperrors.Unavailable
	case code == http.StatusUnauthorized:
		return apperrors.Unauthorized
	case code == http.StatusForbidden:
		return apperrors.Forbidden
	case code == http.StatusNotFound:
		return apperrors.NotFound
	case code >= 500:
		return apperrors.Unavailable
	case code >= 400:
		return apperrors.InvalidInput
	default:
		return apperrors.ExecutionFailed
	}
}
