package maputil

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ToFloat 임의의 값을 float64로 변환합니다.
//
// 문자열은 앞부분의 숫자만 해석하며, 해석할 수 없거나 nil, NaN, ±Inf인 경우 0을 반환합니다.
func ToFloat(v any) float64 {
	var f float64

	switch x := v.(type) {
	case nil:
		return 0
	case string:
		m := floatPrefix.FindString(strings.TrimSpace(x))
		if m == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		if err := mapstructure.WeakDecode(v, &f); err != nil {
			return 0
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// ToInt 임의의 값을 int로 변환합니다. 결과가 0이거나 해석할 수 없으면 def를 반환합니다.
//
// 문자열은 앞부분의 정수만 해석하고("3.7" → 3), 실수는 소수점 이하를 버립니다.
func ToInt(v any, def int) int {
	var n int

	switch x := v.(type) {
	case nil:
		return def
	case string:
		m := intPrefix.FindString(strings.TrimSpace(x))
		if m == "" {
			return def
		}
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return def
		}
		n = parsed
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return def
		}
		n = int(x)
	default:
		if err := mapstructure.WeakDecode(v, &n); err != nil {
			return def
		}
	}

	if n == 0 {
		return def
	}

	return n
}
