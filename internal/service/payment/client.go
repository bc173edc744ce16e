// Package payment PayPal REST API를 사용하는 결제 클라이언트와 체크아웃 결제 위젯을 제공합니다.
package payment

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/checkout"
	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
	"github.com/darkkaiser/storefront-server/internal/service/pricing"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/tidwall/gjson"
	"golang.org/x/text/currency"
)

const component = "payment.paypal"

const (
	defaultCurrency = "USD"

	// tokenExpiryMargin 토큰 만료 직전의 요청 실패를 피하기 위해 만료 시각보다 일찍 갱신합니다.
	tokenExpiryMargin = 60 * time.Second

	captureCompleted = "COMPLETED"
)

// Config PayPal 클라이언트 설정
type Config struct {
	BaseURL   string
	SDKURL    string
	ClientID  string
	Secret    string
	Currency  string
	ReturnURL string
	CancelURL string
}

// Client PayPal REST API 클라이언트
type Client struct {
	fetcher fetcher.Fetcher
	cfg     Config

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

// NewClient 새로운 Client를 생성합니다. 자격 증명은 사용 시점에 검사합니다.
func NewClient(f fetcher.Fetcher, cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}

	return &Client{
		fetcher: f,
		cfg:     cfg,
		now:     time.Now,
	}
}

// checkCredentials Client ID와 Secret이 모두 설정되어 있는지 확인합니다.
func (c *Client) checkCredentials() error {
	if c.cfg.ClientID == "" {
		return ErrClientIDMissing
	}
	if c.cfg.Secret == "" {
		return ErrSecretMissing
	}
	return nil
}

// AccessToken OAuth client-credentials 방식으로 발급받은 토큰을 반환합니다. 만료 전까지는 재사용합니다.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	err := fetcher.FetchJSON(ctx, c.fetcher, fetcher.Request{
		Method:    http.MethodPost,
		URL:       c.cfg.BaseURL + "/v1/oauth2/token",
		Form:      url.Values{"grant_type": {"client_credentials"}},
		BasicAuth: &fetcher.BasicAuth{Username: c.cfg.ClientID, Password: c.cfg.Secret},
	}, &resp)
	if err != nil {
		return "", newErrProviderFailed(err, "토큰 발급", providerMessage(err))
	}

	c.accessToken = resp.AccessToken
	c.expiresAt = c.now().Add(time.Duration(resp.ExpiresIn)*time.Second - tokenExpiryMargin)

	applog.WithComponentAndFields(component, applog.Fields{
		"expires_in": resp.ExpiresIn,
	}).Debug("PayPal 액세스 토큰 발급 완료")

	return c.accessToken, nil
}

// CreateOrder 구매 단위로 CAPTURE 결제 주문을 생성하고 주문 ID를 반환합니다.
func (c *Client) CreateOrder(ctx context.Context, unit checkout.PurchaseUnit) (string, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return "", err
	}

	body := map[string]any{
		"intent":         "CAPTURE",
		"purchase_units": []checkout.PurchaseUnit{unit},
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := fetcher.FetchJSON(ctx, c.fetcher, fetcher.Request{
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/v2/checkout/orders",
		Header: bearer(token),
		Body:   body,
	}, &resp); err != nil {
		return "", newErrProviderFailed(err, "주문 생성", providerMessage(err))
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"order_id": resp.ID,
		"amount":   unit.Amount.Value,
		"currency": unit.Amount.CurrencyCode,
	}).Info("PayPal 결제 주문 생성")

	return resp.ID, nil
}

// CaptureOrder 승인된 결제 주문을 확정합니다. 응답 상태가 COMPLETED가 아니면 실패로 처리합니다.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (checkout.CaptureResult, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return checkout.CaptureResult{}, err
	}

	var result checkout.CaptureResult
	if err := fetcher.FetchJSON(ctx, c.fetcher, fetcher.Request{
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture",
		Header: bearer(token),
		Body:   struct{}{},
	}, &result); err != nil {
		return checkout.CaptureResult{}, newErrProviderFailed(err, "결제 확정", providerMessage(err))
	}

	if result.Status != captureCompleted {
		return checkout.CaptureResult{}, NewErrCaptureNotCompleted(orderID, result.Status)
	}

	return result, nil
}

// Payment 결제 의도 생성 결과
type Payment struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Links []Link `json:"links"`
}

// Link 결제 승인 페이지 등 후속 동작의 주소
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// CreatePayment 결제 의도(sale)를 생성합니다. currency가 비어 있으면 USD를 사용합니다.
// 자격 증명이 없으면 PayPal을 호출하지 않고 즉시 실패합니다.
func (c *Client) CreatePayment(ctx context.Context, amount float64, code string) (*Payment, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	if code == "" {
		code = defaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, NewErrInvalidCurrency(err, code)
	}
	if amount <= 0 {
		return nil, NewErrInvalidAmount(amount)
	}

	body := map[string]any{
		"intent": "sale",
		"payer":  map[string]string{"payment_method": "paypal"},
		"transactions": []map[string]any{
			{
				"amount": map[string]string{
					"total":    pricing.FormatAmount(amount),
					"currency": unit.String(),
				},
				"description": "Payment via PayPal",
			},
		},
		"redirect_urls": map[string]string{
			"return_url": c.cfg.ReturnURL,
			"cancel_url": c.cfg.CancelURL,
		},
	}

	var p Payment
	if err := fetcher.FetchJSON(ctx, c.fetcher, fetcher.Request{
		Method:    http.MethodPost,
		URL:       c.cfg.BaseURL + "/v1/payments/payment",
		Body:      body,
		BasicAuth: &fetcher.BasicAuth{Username: c.cfg.ClientID, Password: c.cfg.Secret},
	}, &p); err != nil {
		return nil, newErrProviderFailed(err, "결제 생성", providerMessage(err))
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"payment_id": p.ID,
		"state":      p.State,
		"amount":     pricing.FormatAmount(amount),
		"currency":   unit.String(),
	}).Info("PayPal 결제 생성")

	return &p, nil
}

// ScriptURL 브라우저가 불러올 PayPal SDK 스크립트 주소
func (c *Client) ScriptURL() string {
	if c.cfg.SDKURL == "" || c.cfg.ClientID == "" {
		return ""
	}

	q := url.Values{
		"client-id": {c.cfg.ClientID},
		"currency":  {c.cfg.Currency},
	}
	return c.cfg.SDKURL + "?" + q.Encode()
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}

// providerMessage PayPal 에러 응답 본문의 message 필드를 추출합니다.
func providerMessage(err error) string {
	var statusErr *fetcher.HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.BodySnippet == "" {
		return ""
	}
	return gjson.Get(statusErr.BodySnippet, "message").String()
}
