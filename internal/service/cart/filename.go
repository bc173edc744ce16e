package cart

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 경로 구분자와 Windows 예약 문자를 하이픈으로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 클라이언트 키와 슬롯으로 고유한 파일명을 생성합니다.
//
// 사람이 읽을 수 있는 kebab-case 이름에 원본 값의 64비트 해시를 덧붙여,
// 정제 후 같아지는 서로 다른 키나 대소문자만 다른 키도 서로 다른 파일에 저장됩니다.
//
// 형식: "cart-{정제된키}-{정제된슬롯}-{16자리해시}.json"
func generateFilename(key, slot string) string {
	keyName := truncateByBytes(sanitizeName(key), 50)
	slotName := truncateByBytes(sanitizeName(slot), 20)

	// 길이 접두사로 "ab"+"c"와 "a"+"bc"의 해시 충돌을 막습니다.
	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s|%d:%s", len(key), key, len(slot), slot)

	return fmt.Sprintf("cart-%s-%s-%016x.json", keyName, slotName, hasher.Sum64())
}

func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes UTF-8 문자가 중간에 잘리지 않도록 바이트 길이 기준으로 문자열을 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	var total int
	for total < len(s) {
		_, size := utf8.DecodeRuneInString(s[total:])
		if total+size > limit {
			break
		}
		total += size
	}

	return s[:total]
}
