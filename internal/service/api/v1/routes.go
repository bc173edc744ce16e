// Package v1 스토어프론트 API의 v1 버전 라우트를 정의합니다.
//
// 모든 엔드포인트는 /api/v1 경로 하위에 등록됩니다.
//
// 주요 엔드포인트:
//   - GET  /products, /product-details, /products/:id/full   상품 조회
//   - POST /cart                                              장바구니 에코
//   - GET, DELETE /carts/:key, POST /carts/:key/lines         장바구니 저장소
//   - /checkout/sessions/...                                  체크아웃 세션과 PayPal 콜백
//   - POST /payments                                          결제 생성
package v1

import (
	"github.com/darkkaiser/storefront-server/internal/service/api/middleware"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 본문을 받는 엔드포인트에는 JSON Content-Type 검증이 적용됩니다.
// 단, 장바구니 에코(/cart)는 잘못된 본문에도 고정된 500 응답을 돌려줘야 하므로 검증하지 않습니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")
	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	// 상품
	g.GET("/products", h.ListProductsHandler)
	g.GET("/products/:id/full", h.FullProductHandler)
	g.GET("/product-details", h.ProductDetailsHandler)

	// 장바구니
	g.POST("/cart", h.CartEchoHandler)
	g.GET("/carts/:key", h.GetCartHandler)
	g.DELETE("/carts/:key", h.ClearCartHandler)
	g.POST("/carts/:key/lines", h.AddLineHandler, jsonOnly)

	// 체크아웃
	checkout := g.Group("/checkout/sessions")
	checkout.POST("", h.CreateSessionHandler, jsonOnly)
	checkout.GET("/:id", h.GetSessionHandler)
	checkout.POST("/:id/confirm", h.ConfirmHandler, jsonOnly)
	checkout.POST("/:id/paypal/orders", h.CreatePaymentOrderHandler)
	checkout.POST("/:id/paypal/approve", h.ApprovePaymentHandler, jsonOnly)
	checkout.POST("/:id/paypal/cancel", h.CancelPaymentHandler)
	checkout.POST("/:id/paypal/error", h.PaymentErrorHandler, jsonOnly)

	// 결제
	g.POST("/payments", h.CreatePaymentHandler, jsonOnly)
}
