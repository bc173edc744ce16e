package validation

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/darkkaiser/storefront-server/pkg/cronx"
)

// hostLabel RFC 1123 호스트명 레이블 (영문/숫자로 시작하고 끝나는 63자 이하)
var hostLabel = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// ValidateCORSOrigin origin이 "scheme://host[:port]" 형식의 CORS Origin인지 검사합니다. "*"는 허용합니다.
//
// 스토어프론트 브라우저 앱의 주소(예: http://localhost:3000)를 적는 곳이므로
// 경로, 쿼리, 프래그먼트, 사용자 정보가 붙은 값은 거부합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin이 비어 있습니다")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin을 URL로 해석할 수 없습니다 (origin=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin의 스키마는 http 또는 https여야 합니다 (origin=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin에는 scheme://host[:port] 외의 요소가 올 수 없습니다 (origin=%q)", origin)
	}

	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return fmt.Errorf("CORS Origin의 포트가 1-65535 범위가 아닙니다 (origin=%q)", origin)
		}
	}

	return validateHost(u.Hostname())
}

func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다")
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명이 253자를 넘습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, l := range labels {
		if !hostLabel.MatchString(l) {
			return fmt.Errorf("호스트명의 레이블이 올바르지 않습니다 (host=%q, label=%q)", host, l)
		}
	}

	// 숫자로만 된 최상위 도메인은 IP 주소 오기로 간주합니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateCronExpression 초 필드를 포함하는 6필드 Cron 표현식인지 검사합니다. 예: "0 */1 * * * *"
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식을 해석할 수 없습니다 (spec=%q): %w", spec, err)
	}
	return nil
}
