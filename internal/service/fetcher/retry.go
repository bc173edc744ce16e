package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

const (
	maxAllowedRetries = 10

	defaultMinRetryDelay = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryFetcher HTTP 요청 실패 시 지수 백오프와 Full Jitter로 재시도하는 미들웨어입니다.
//
//   - 서버가 Retry-After 헤더를 보내면 해당 값을 우선 사용하며, maxRetryDelay를 넘으면 재시도하지 않습니다.
//   - 비멱등 메서드(POST, PATCH)와 본문을 재생성할 수 없는 요청은 재시도하지 않습니다.
//   - 대기 중 컨텍스트가 취소되면 즉시 중단합니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher 새로운 RetryFetcher 인스턴스를 생성합니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	maxRetries = normalizeMaxRetries(maxRetries)
	minRetryDelay, maxRetryDelay = normalizeRetryDelays(minRetryDelay, maxRetryDelay)

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	effectiveMaxRetries := f.maxRetries
	if !isIdempotentMethod(req.Method) {
		effectiveMaxRetries = 0
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil && effectiveMaxRetries > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":         redactURL(req.URL),
			"method":      req.Method,
			"max_retries": f.maxRetries,
		}).Warn("재시도 비활성화: 요청 본문 재생성 불가 (GetBody nil)")

		effectiveMaxRetries = 0
	}

	var lastErr error

	for i := 0; i <= effectiveMaxRetries; i++ {
		if i > 0 {
			delay, err := f.nextDelay(i, lastErr)
			if err != nil {
				return nil, err
			}

			applog.WithComponentAndFields(component, applog.Fields{
				"url":               redactURL(req.URL),
				"retry":             i,
				"remaining_retries": effectiveMaxRetries - i,
				"delay":             delay.String(),
				"error":             lastErr.Error(),
			}).Warn("재시도 대기 중: 일시적 오류로 인해 요청 재시도를 준비합니다")

			timer := time.NewTimer(delay)
			select {
			case <-req.Context().Done():
				timer.Stop()
				return nil, req.Context().Err()
			case <-timer.C:
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, newErrGetBodyFailed(err)
				}

				req = req.Clone(req.Context())
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil {
			if !isRetriableStatus(resp.StatusCode) || i == effectiveMaxRetries {
				return resp, nil
			}

			// StatusCodeFetcher 없이 사용된 경우, 재시도 대상 상태 코드를 에러로 변환합니다.
			err = CheckResponseStatus(resp)
			drainAndCloseBody(resp.Body)
		} else if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		if errors.Is(err, context.DeadlineExceeded) && req.Context().Err() != nil {
			return nil, err
		}
		if !isRetriable(err) {
			return nil, err
		}

		lastErr = err
	}

	if effectiveMaxRetries == 0 {
		return nil, lastErr
	}

	return nil, newErrMaxRetriesExceeded(lastErr)
}

// nextDelay i번째 재시도 전 대기 시간을 계산합니다.
func (f *RetryFetcher) nextDelay(i int, lastErr error) (time.Duration, error) {
	var statusErr *HTTPStatusError
	if errors.As(lastErr, &statusErr) && statusErr.Header != nil {
		if retryAfter, ok := parseRetryAfter(statusErr.Header.Get("Retry-After")); ok {
			if retryAfter > f.maxRetryDelay {
				return 0, newErrRetryAfterExceeded(retryAfter.String(), f.maxRetryDelay.String())
			}
			return retryAfter, nil
		}
	}

	delay := f.minRetryDelay * time.Duration(1<<(i-1))
	if delay > f.maxRetryDelay {
		delay = f.maxRetryDelay
	}

	delay = time.Duration(rand.Int64N(int64(delay) + 1))
	if delay < f.minRetryDelay/2 {
		delay = f.minRetryDelay / 2
	}

	return delay, nil
}

func normalizeMaxRetries(maxRetries int) int {
	return min(max(maxRetries, 0), maxAllowedRetries)
}

// normalizeRetryDelays 0 이하의 값에는 기본값을 적용하고, 최대값이 최소값보다 작지 않도록 보정합니다.
func normalizeRetryDelays(minRetryDelay, maxRetryDelay time.Duration) (time.Duration, time.Duration) {
	if minRetryDelay <= 0 {
		minRetryDelay = defaultMinRetryDelay
	}
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = minRetryDelay
	}

	return minRetryDelay, maxRetryDelay
}

func isRetriableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}

	return code >= 500
}

func isRetriable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && strings.Contains(urlErr.Error(), "unsupported protocol scheme") {
		return false
	}

	var x509HostnameErr x509.HostnameError
	var x509UnknownAuthorityErr x509.UnknownAuthorityError
	var x509CertificateInvalidErr x509.CertificateInvalidError
	if errors.As(err, &x509HostnameErr) || errors.As(err, &x509UnknownAuthorityErr) || errors.As(err, &x509CertificateInvalidErr) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return isRetriableStatus(statusErr.StatusCode)
	}

	if apperrors.Is(err, apperrors.ExecutionFailed) ||
		apperrors.Is(err, apperrors.InvalidInput) ||
		apperrors.Is(err, apperrors.Forbidden) ||
		apperrors.Is(err, apperrors.NotFound) {
		return false
	}

	return true
}

func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func parseRetryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(value); err == nil {
		return max(time.Until(date), 0), true
	}

	return 0, false
}
