package cart

import (
	"context"
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
)

// Mirror 장바구니 변경 내용을 외부로 복제하는 대상입니다. 복제 실패는 장바구니 상태에 영향을 주지 않습니다.
type Mirror interface {
	Mirror(ctx context.Context, lines []Line) error
}

// EchoRequest 에코 엔드포인트로 전송되는 본문
type EchoRequest struct {
	Cart []Line `json:"cart"`
}

// EchoResponse 에코 엔드포인트의 응답 본문
type EchoResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EchoClient 장바구니 전체를 에코 엔드포인트(POST /cart)로 전송하는 Mirror입니다.
// 에코 엔드포인트는 받은 내용을 기록만 하며, 서버 측 장바구니의 원본이 아닙니다.
type EchoClient struct {
	fetcher fetcher.Fetcher
	url     string
}

var _ Mirror = (*EchoClient)(nil)

// NewEchoClient 새로운 EchoClient를 생성합니다.
func NewEchoClient(f fetcher.Fetcher, url string) *EchoClient {
	return &EchoClient{
		fetcher: f,
		url:     url,
	}
}

func (c *EchoClient) Mirror(ctx context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}

	var resp EchoResponse
	return fetcher.FetchJSON(ctx, c.fetcher, fetcher.Request{
		Method: http.MethodPost,
		URL:    c.url,
		Body:   EchoRequest{Cart: lines},
	}, &resp)
}
