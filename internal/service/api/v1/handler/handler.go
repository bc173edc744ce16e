// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩하고 검증한 뒤 카탈로그, 장바구니, 체크아웃, 결제 서비스를 호출하고
// 결과를 JSON으로 응답합니다. 서비스가 반환한 AppError는 전역 에러 핸들러가 상태 코드로 변환합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/checkout"
	"github.com/darkkaiser/storefront-server/internal/service/payment"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Catalog 상품 조회 기능
type Catalog interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
	LoadDetails(ctx context.Context, id string) (catalog.Details, error)
	Assemble(ctx context.Context, id string) (catalog.FullProduct, error)
}

// Checkout 체크아웃 세션 기능
type Checkout interface {
	Create(ctx context.Context, cartKey string) (checkout.Snapshot, error)
	Snapshot(ctx context.Context, id string) (checkout.Snapshot, error)
	ConfirmManual(ctx context.Context, id string, info checkout.ShippingInfo) (checkout.Snapshot, error)
	CreatePaymentOrder(ctx context.Context, id string) (string, error)
	ApprovePayment(ctx context.Context, id, orderID string) (checkout.Snapshot, error)
	CancelPayment(ctx context.Context, id string) (checkout.Snapshot, error)
	FailPayment(ctx context.Context, id string, cause error) (checkout.Snapshot, error)
}

// Payments 결제 생성 기능
type Payments interface {
	CreatePayment(ctx context.Context, amount float64, currency string) (*payment.Payment, error)
}

var (
	_ Catalog  = (*catalog.Aggregator)(nil)
	_ Checkout = (*checkout.Service)(nil)
	_ Payments = (*payment.Client)(nil)
)

// Dependencies Handler가 사용하는 서비스 목록
type Dependencies struct {
	Catalog  Catalog
	Carts    cart.Store
	Checkout Checkout
	Payments Payments

	// DefaultCurrency 결제 요청에 통화가 없을 때 사용할 통화 코드
	DefaultCurrency string
}

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	catalog  Catalog
	carts    cart.Store
	checkout Checkout
	payments Payments

	defaultCurrency string
}

// New Handler 인스턴스를 생성합니다.
func New(deps Dependencies) *Handler {
	return &Handler{
		catalog:  deps.Catalog,
		carts:    deps.Carts,
		checkout: deps.Checkout,
		payments: deps.Payments,

		defaultCurrency: deps.DefaultCurrency,
	}
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"method":     c.Request().Method,
		"path":       c.Path(),
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
