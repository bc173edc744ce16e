package maputil

import (
	"reflect"
)

// stringToNumberHookFunc 문자열을 숫자 필드로 디코딩할 때, 앞부분의 숫자만 해석합니다.
//
// 예: "12.50 USD" → 12.5, "abc" → 0
//
// 해석할 수 없는 문자열은 0으로 변환되며 에러를 반환하지 않습니다.
func stringToNumberHookFunc() func(reflect.Type, reflect.Type, any) (any, error) {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		s := reflect.ValueOf(data).String()

		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			return ToFloat(s), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return ToInt(s, 0), nil
		default:
			return data, nil
		}
	}
}
