package system

// HealthResponse GET /health 응답
//
// 의존성 중 하나라도 비정상이면 Status는 unhealthy입니다. HTTP 상태 코드는 항상 200입니다.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Dependencies 의존성 이름(shopify, catalog_cache, paypal)별 점검 결과
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
