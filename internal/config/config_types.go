package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	HTTPRetry HTTPRetryConfig `json:"http_retry"`
	Shopify   ShopifyConfig   `json:"shopify"`
	PayPal    PayPalConfig    `json:"paypal"`
	Cart      CartConfig      `json:"cart"`
	Checkout  CheckoutConfig  `json:"checkout"`
	Cache     CacheConfig     `json:"cache"`
	Notifier  NotifierConfig  `json:"notifier"`
	API       APIConfig       `json:"api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	sections := []struct {
		name  string
		value any
	}{
		{"HTTP 재시도(http_retry)", &c.HTTPRetry},
		{"Shopify(shopify)", &c.Shopify},
		{"PayPal(paypal)", &c.PayPal},
		{"장바구니(cart)", &c.Cart},
		{"체크아웃(checkout)", &c.Checkout},
		{"캐시(cache)", &c.Cache},
		{"알림(notifier)", &c.Notifier},
		{"API 서버(api)", &c.API},
	}
	for _, s := range sections {
		if err := checkStruct(v, s.value, s.name); err != nil {
			return err
		}
	}

	if err := c.API.CORS.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영 안정성을 위해 권장되는 설정 준수 여부를 진단하여 경고 메시지 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}
	if !c.PayPal.HasCredentials() {
		warnings = append(warnings, "PayPal 자격 증명(client_id, secret)이 설정되지 않았습니다. 결제 요청은 설정 오류로 즉시 실패합니다")
	}
	if c.Cart.Storage == CartStorageMemory {
		warnings = append(warnings, "장바구니 저장소가 메모리(memory)로 설정되었습니다. 서버 재시작 시 장바구니가 유실됩니다")
	}
	if c.Cart.EchoURL == "" {
		warnings = append(warnings, fmt.Sprintf("장바구니 에코 주소(cart.echo_url)가 설정되지 않아 장바구니 변경 사항을 전송하지 않습니다. 예: http://localhost:%d/api/v1/cart", c.API.ListenPort))
	}

	return warnings
}

// HTTPRetryConfig 업스트림 HTTP 요청 실패 시 재시도 정책
type HTTPRetryConfig struct {
	MaxRetries int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay time.Duration `json:"retry_delay" validate:"gt=0"`
}

// ShopifyConfig Shopify Admin REST API 연동 설정
type ShopifyConfig struct {
	BaseURL     string `json:"base_url" validate:"required,http_url"`
	APIVersion  string `json:"api_version" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`

	RequestTimeout   time.Duration `json:"request_timeout" validate:"gt=0"`
	RevalidateAfter  time.Duration `json:"revalidate_after" validate:"gt=0"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"gt=0"`

	// InventoryConcurrency 상품 목록 조회 시 재고 조회를 동시에 수행할 최대 개수
	InventoryConcurrency int `json:"inventory_concurrency" validate:"min=1,max=64"`

	Breaker BreakerConfig `json:"breaker"`
}

// BreakerConfig 업스트림 호출을 보호하는 회로 차단기 설정
type BreakerConfig struct {
	MaxFailures uint32        `json:"max_failures" validate:"min=1"`
	OpenTimeout time.Duration `json:"open_timeout" validate:"gt=0"`
}

// PayPalConfig PayPal REST API 연동 설정
//
// ClientID/Secret은 로드 시점에 검증하지 않습니다. 자격 증명이 없으면 결제 요청 시점에 즉시 실패합니다.
type PayPalConfig struct {
	BaseURL   string `json:"base_url" validate:"required,http_url"`
	SDKURL    string `json:"sdk_url" validate:"required,http_url"`
	ClientID  string `json:"client_id"`
	Secret    string `json:"secret"`
	Currency  string `json:"currency" validate:"required,iso4217"`
	ReturnURL string `json:"return_url" validate:"required,http_url"`
	CancelURL string `json:"cancel_url" validate:"required,http_url"`
}

// HasCredentials 결제 요청에 필요한 자격 증명이 모두 설정되어 있는지 확인합니다.
func (c *PayPalConfig) HasCredentials() bool {
	return c.ClientID != "" && c.Secret != ""
}

// 장바구니 저장소 종류
const (
	CartStorageFile   = "file"
	CartStorageMemory = "memory"
)

// CartConfig 장바구니 저장소 및 에코(Echo) 미러링 설정
type CartConfig struct {
	Storage string `json:"storage" validate:"oneof=file memory"`
	DataDir string `json:"data_dir" validate:"required_if=Storage file"`

	// EchoURL 장바구니 변경 시 전체 장바구니를 전송할 에코 엔드포인트입니다. 비어 있으면 미러링하지 않습니다.
	// 보통 이 서버의 /api/v1/cart 주소를 지정합니다.
	EchoURL     string        `json:"echo_url" validate:"omitempty,http_url"`
	EchoTimeout time.Duration `json:"echo_timeout" validate:"gt=0"`
}

// CheckoutConfig 체크아웃 세션 및 페이지 이동 설정
type CheckoutConfig struct {
	RedirectDelay        time.Duration `json:"redirect_delay" validate:"gte=0"`
	SessionTTL           time.Duration `json:"session_ttl" validate:"gt=0"`
	EmptyCartRedirect    string        `json:"empty_cart_redirect" validate:"required,startswith=/"`
	ConfirmationRedirect string        `json:"confirmation_redirect" validate:"required,startswith=/"`
}

// 카탈로그 캐시 백엔드 종류
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig 업스트림 응답 캐시 설정
type CacheConfig struct {
	Backend   string `json:"backend" validate:"oneof=memory redis"`
	RedisAddr string `json:"redis_addr" validate:"required_if=Backend redis,omitempty,hostname_port"`
	RedisDB   int    `json:"redis_db" validate:"min=0"`

	// SweepSpec 만료된 캐시 항목과 체크아웃 세션을 정리하는 주기 (초 단위 6필드 Cron 표현식)
	SweepSpec string `json:"sweep_spec" validate:"required,cron_spec"`
}

// NotifierConfig 사용자/운영자 알림 설정
type NotifierConfig struct {
	// Duration 알림의 자동 닫힘 시간
	Duration time.Duration `json:"duration" validate:"gt=0"`

	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 경고 이상의 알림을 운영자 채팅방으로 전달하는 텔레그램 봇 설정 (선택)
type TelegramConfig struct {
	BotToken string `json:"bot_token" validate:"omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_with=BotToken"`
}

// Enabled 텔레그램 알림이 설정되어 있는지 확인합니다.
func (c *TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// APIConfig REST API 서버 설정
type APIConfig struct {
	TLSServer   bool       `json:"tls_server"`
	TLSCertFile string     `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string     `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int        `json:"listen_port" validate:"min=1,max=65535"`
	CORS        CORSConfig `json:"cors"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return nil
}
