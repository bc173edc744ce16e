// Package color 상품 옵션(variant) 제목에서 추출한 색상 단어를 CSS에서 사용할 수 있는 색상 값으로 정규화합니다.
package color

import (
	"regexp"
	"strings"
)

// Placeholder 인식할 수 없는 색상 단어에 사용하는 중립 색상
const Placeholder = "#f5f5f5"

var hexColor = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// synonyms CSS 키워드가 아니지만 상품 제목에 자주 쓰이는 철자와 대응하는 CSS 키워드
var synonyms = map[string]string{
	"kaki":      "khaki",
	"grey":      "gray",
	"darkgrey":  "darkgray",
	"lightgrey": "lightgray",
	"dimgrey":   "dimgray",
	"charcoal":  "dimgray",
	"beige":     "beige",
	"navy":      "navy",
	"cream":     "ivory",
	"burgundy":  "maroon",
	"wine":      "maroon",
	"mustard":   "goldenrod",
	"camel":     "tan",
	"mint":      "mintcream",
	"rose":      "pink",
	"sky":       "skyblue",
}

// Normalize 색상 단어를 CSS 색상 값으로 변환합니다.
//
//  1. 첫 번째 단어를 소문자로 변환합니다.
//  2. 동의어 테이블에 있으면 대응하는 표준 키워드를 사용합니다. (grey처럼 CSS가 허용하는 별칭도 표준 철자로 통일)
//  3. CSS 색상 키워드 또는 #rgb/#rrggbb 형식이면 그대로 사용합니다.
//  4. 그 외에는 Placeholder를 반환합니다.
//
// 항상 렌더링 가능한 값을 반환하며, Normalize(Normalize(c)) == Normalize(c)가 성립합니다.
func Normalize(token string) string {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return Placeholder
	}

	c := strings.ToLower(fields[0])

	if s, ok := synonyms[c]; ok {
		return s
	}
	if isCSSColor(c) {
		return c
	}

	return Placeholder
}

// FromVariantTitle 옵션 제목(예: "Navy / XL")의 첫 단어를 색상으로 해석합니다.
func FromVariantTitle(title string) string {
	return Normalize(title)
}

// ContrastText 색상 견본 위에 표시할 글자색을 반환합니다. 밝은 견본에는 검정, 그 외에는 흰색입니다.
func ContrastText(c string) string {
	switch Normalize(c) {
	case "white", "yellow", "ivory", "snow", "mintcream", "lightyellow", "khaki", Placeholder:
		return "#000"
	default:
		return "#fff"
	}
}

func isCSSColor(c string) bool {
	if _, ok := namedColors[c]; ok {
		return true
	}

	return hexColor.MatchString(c)
}
