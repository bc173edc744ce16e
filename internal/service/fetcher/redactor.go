package fetcher

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

var (
	// sensitiveExactKeys 대소문자 구분 없이 전체 문자열이 일치할 때만 마스킹되는 쿼리 파라미터 키 목록입니다.
	sensitiveExactKeys = []string{
		"token", "auth", "key", "secret", "password", "signature",
		"access_token", "api_key", "client_secret", "client_id",
	}

	// sensitiveSuffixes 특정 접미사로 끝나면 마스킹되는 쿼리 파라미터 키 목록입니다.
	sensitiveSuffixes = []string{
		"_token", "_secret", "_password", "_sig",
	}

	// sensitiveHeaders 로그와 에러 메시지에 노출되면 안 되는 헤더 목록입니다.
	sensitiveHeaders = []string{
		"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie", "X-Shopify-Access-Token",
	}
)

// redactHeaders 민감한 헤더 값을 마스킹한 복사본을 반환합니다.
func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, key := range sensitiveHeaders {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}

	return masked
}

// redactURL URL의 사용자 정보와 민감한 쿼리 파라미터를 마스킹한 문자열을 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u

	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), "xxxxx")
		} else if u.User.Username() != "" {
			ru.User = url.User("xxxxx")
		}
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, "xxxxx")
			}
		}

		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	if slices.Contains(sensitiveExactKeys, lowerKey) {
		return true
	}

	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lowerKey, suffix) {
			return true
		}
	}

	return false
}
