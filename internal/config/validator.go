package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// telegramBotTokenRegex 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 커스텀 유효성 검사 함수가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름이 표시되도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return validation.ValidateCronExpression(fl.Field().String()) == nil
	})
	mustRegister(v, "telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenRegex.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 사항을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서비스 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "AccessToken":
		return apperrors.New(apperrors.InvalidInput, "Shopify Admin API 접근 토큰(access_token)은 필수입니다 (환경 변수: STOREFRONT_SHOPIFY__ACCESS_TOKEN)")
	case "Currency":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("결제 통화(currency)는 ISO 4217 통화 코드여야 합니다: '%v'", firstErr.Value()))
	case "RedisAddr":
		if firstErr.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, "캐시 백엔드가 redis인 경우 Redis 주소(redis_addr)는 필수입니다")
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Redis 주소(redis_addr) 형식이 올바르지 않습니다 (형식: host:port): '%v'", firstErr.Value()))
	case "DataDir":
		return apperrors.New(apperrors.InvalidInput, "장바구니 저장소가 file인 경우 데이터 디렉토리(data_dir)는 필수입니다")
	case "TLSCertFile", "TLSKeyFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s는 필수입니다", firstErr.Field()))
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", firstErr.Field(), firstErr.Value()))
		}
	case "ChatID":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 봇 토큰(bot_token)을 설정한 경우 채팅 ID(chat_id)는 필수입니다")
	}

	switch firstErr.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 Cron 표현식(%s)이 올바르지 않습니다: '%v' (예: 0 */1 * * * *)", contextName, firstErr.Field(), firstErr.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "http_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s는 http(s) URL이어야 합니다: '%v'", contextName, firstErr.Field(), firstErr.Value()))
	case "oneof":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값은 [%s] 중 하나여야 합니다: '%v'", contextName, firstErr.Field(), firstErr.Param(), firstErr.Value()))
	case "gt", "gte":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 허용 범위를 벗어났습니다: '%v'", contextName, firstErr.Field(), firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
