package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "storefront-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 로드하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정 값을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: STOREFRONT_SHOPIFY__ACCESS_TOKEN -> shopify.access_token
	EnvPrefix = "STOREFRONT_"
)

// defaults 설정 파일에 값이 없을 때 적용되는 기본값입니다. (가장 낮은 우선순위)
var defaults = map[string]any{
	"http_retry.max_retries": 3,
	"http_retry.retry_delay": "1s",

	"shopify.api_version":           "2023-10",
	"shopify.request_timeout":       "10s",
	"shopify.revalidate_after":      "300s",
	"shopify.max_response_bytes":    10 * 1024 * 1024,
	"shopify.inventory_concurrency": 8,
	"shopify.breaker.max_failures":  5,
	"shopify.breaker.open_timeout":  "30s",

	"paypal.base_url":   "https://api-m.sandbox.paypal.com",
	"paypal.sdk_url":    "https://www.paypal.com/sdk/js",
	"paypal.currency":   "USD",
	"paypal.return_url": "http://localhost:3000/success",
	"paypal.cancel_url": "http://localhost:3000/cancel",

	"cart.storage":      "file",
	"cart.data_dir":     "data/carts",
	"cart.echo_timeout": "5s",

	"checkout.redirect_delay":        "2s",
	"checkout.session_ttl":           "30m",
	"checkout.empty_cart_redirect":   "/products",
	"checkout.confirmation_redirect": "/order-confirmation",

	"cache.backend":    "memory",
	"cache.sweep_spec": "0 */1 * * * *",

	"notifier.duration": "2s",

	"api.listen_port":        8080,
	"api.cors.allow_origins": []string{"http://localhost:3000"},
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일을 읽어 AppConfig를 생성합니다.
//
// 우선순위: 기본값 < JSON 설정 파일 < 환경 변수(STOREFRONT_ 접두사, "__"는 계층 구분자)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 정의되지 않은 필드가 설정 파일에 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
