package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 헬스체크 상태: 비정상
	HealthStatusUnhealthy = "unhealthy"

	// DependencyShopify 외부 의존성 ID: Shopify Admin API
	DependencyShopify = "shopify"

	// DependencyCatalogCache 외부 의존성 ID: 카탈로그 캐시
	DependencyCatalogCache = "catalog_cache"

	// DependencyPayPal 외부 의존성 ID: PayPal
	DependencyPayPal = "paypal"

	// MsgDepStatusHealthy 외부 의존성 상태: 정상
	MsgDepStatusHealthy = "정상 작동 중"
)
