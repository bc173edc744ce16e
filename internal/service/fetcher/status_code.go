package fetcher

import (
	"net/http"
)

// StatusCodeFetcher HTTP 응답의 상태 코드를 검증하는 미들웨어입니다.
// 허용되지 않은 상태 코드는 HTTPStatusError로 변환되고, 응답 본문은 이 미들웨어에서 정리됩니다.
type StatusCodeFetcher struct {
	delegate Fetcher

	// allowedStatusCodes nil이면 2xx 전체를 허용합니다.
	allowedStatusCodes []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 새로운 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:           delegate,
		allowedStatusCodes: allowedStatusCodes,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)

		return nil, statusErr
	}

	return resp, nil
}
