/*
Package validation 설정 파일과 API 요청 등 외부 입력값의 유효성을 검사하는 함수를 제공합니다.

  - CORS Origin 검증 (Scheme://Host[:Port])
  - Cron 표현식 검증 (초 단위를 포함하는 6필드 형식)

모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며, 동시에 호출해도 안전합니다.
*/
package validation
