package fetcher

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultTimeout = 30 * time.Second

	defaultUserAgent = "storefront-server"
)

// HTTPFetcher 체인의 가장 안쪽에서 실제 네트워크 요청을 수행하는 구현체입니다.
//
// 전송 계층은 otelhttp로 계측되어, 등록된 TracerProvider가 있으면 업스트림 호출마다 스팬이 기록됩니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 지정된 타임아웃을 사용하는 HTTPFetcher를 생성합니다. 0 이하이면 30초를 사용합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		userAgent: userAgent,
	}
}

// Do 요청 헤더에 User-Agent가 없으면 기본값을 설정한 뒤 요청을 전송합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	return h.client.Do(req)
}
