package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
)

// Request JSON API 호출 요청입니다.
type Request struct {
	Method string
	URL    string
	Header http.Header

	// Body nil이 아니면 JSON으로 인코딩하여 전송합니다.
	Body any

	// Form Body가 nil이고 Form이 설정되면 application/x-www-form-urlencoded로 전송합니다.
	Form url.Values

	// BasicAuth 설정되면 Authorization 헤더에 Basic 인증 정보를 추가합니다.
	BasicAuth *BasicAuth
}

// BasicAuth HTTP Basic 인증 정보
type BasicAuth struct {
	Username string
	Password string
}

// FetchBytes 요청을 전송하고 응답 본문 전체를 반환합니다.
func FetchBytes(ctx context.Context, f Fetcher, r Request) ([]byte, error) {
	req, err := newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainAndCloseBody(resp.Body)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("응답 본문(%s)을 읽는 중 에러가 발생했습니다", redactURL(req.URL)))
	}

	return b, nil
}

// FetchJSON 요청을 전송하고 응답 본문(JSON)을 v로 디코딩합니다. v가 nil이면 본문을 버립니다.
func FetchJSON(ctx context.Context, f Fetcher, r Request, v any) error {
	b, err := FetchBytes(ctx, f, r)
	if err != nil {
		return err
	}
	if v == nil || len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, v); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("응답 데이터(%s)의 JSON 변환이 실패하였습니다", r.URL))
	}

	return nil
}

func newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	var payload []byte
	contentType := ""
	switch {
	case r.Body != nil:
		var err error
		if payload, err = json.Marshal(r.Body); err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "요청 본문의 JSON 인코딩에 실패했습니다")
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"

	case r.Form != nil:
		payload = []byte(r.Form.Encode())
		body = strings.NewReader(string(payload))
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("요청 생성에 실패했습니다. (URL: %s)", r.URL))
	}
	if payload != nil {
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(payload)), nil
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.BasicAuth != nil {
		req.SetBasicAuth(r.BasicAuth.Username, r.BasicAuth.Password)
	}

	return req, nil
}
