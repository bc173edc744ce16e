// Package cronx 애플리케이션 전역에서 공통으로 사용하는 Cron 표현식 파서를 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함하는 6필드 확장 형식의 Cron 파서를 반환합니다.
//
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - Descriptor 지원: @hourly, @every 30s 등
//
// 예: "0 */1 * * * *" 매분 0초에 캐시 정리 작업 실행
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
