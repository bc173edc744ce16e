// Package maputil 느슨한 타입의 입력(JSON에서 디코딩된 map, 클라이언트가 저장한 문자열 등)을
// 구조체 또는 숫자로 변환하는 유틸리티를 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode 입력 데이터(주로 map[string]any)를 T 타입의 새 인스턴스로 디코딩합니다.
//
// 기본 동작:
//   - "json" 태그를 기준으로 필드를 매핑합니다.
//   - 약한 타입 변환을 허용합니다. (예: "3" → 3, 12.5 → "12.5")
//   - 알 수 없는 필드는 무시합니다.
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo 입력 데이터를 기존 output 인스턴스에 디코딩합니다. 입력에 없는 필드는 기존 값을 유지합니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Squash:           true,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool

	extraHooks []mapstructure.DecodeHookFunc
}

func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+2)
	hooks = append(hooks, c.extraHooks...)
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		stringToNumberHookFunc(),
	)

	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// Option 디코딩 동작을 변경하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 구조체 태그 이름을 지정합니다.
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithWeaklyTypedInput 약한 타입 변환 허용 여부를 지정합니다.
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 입력에 구조체에 없는 필드가 있으면 에러를 반환하도록 합니다.
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithDecodeHook 기본 훅보다 먼저 실행될 사용자 정의 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}
