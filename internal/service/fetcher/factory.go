package fetcher

import (
	"time"
)

// Config Fetcher 체인 구성을 위한 설정입니다.
type Config struct {
	// Timeout 요청 하나(재시도 제외)의 전체 제한 시간
	Timeout time.Duration

	UserAgent string

	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// AllowedStatusCodes 비어 있으면 2xx 전체를 허용합니다.
	AllowedStatusCodes []int

	// MaxBytes 0이면 기본값(10MB), NoLimit이면 제한하지 않습니다.
	MaxBytes int64

	DisableLogging bool
}

// New 설정에 따라 Fetcher 체인을 구성합니다.
//
// 체인 순서(바깥 → 안쪽): Logging → Retry → StatusCode → MaxBytes → HTTP
func New(cfg Config) Fetcher {
	return Wrap(NewHTTPFetcher(cfg.Timeout, cfg.UserAgent), cfg)
}

// Wrap 주어진 Fetcher를 가장 안쪽 구현체로 사용하여 체인을 구성합니다.
func Wrap(base Fetcher, cfg Config) Fetcher {
	f := NewMaxBytesFetcher(base, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f, cfg.AllowedStatusCodes...)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)

	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}

	return f
}
