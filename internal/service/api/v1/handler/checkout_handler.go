package handler

import (
	"net/http"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/storefront-server/internal/service/checkout"
	"github.com/labstack/echo/v4"
)

// defaultPaymentErrorMessage 위젯이 오류 메시지 없이 실패를 보고했을 때 사용하는 메시지
const defaultPaymentErrorMessage = "결제 위젯에서 알 수 없는 오류가 발생했습니다"

// CreateSessionHandler godoc
// @Summary 체크아웃 세션 생성
// @Description 장바구니를 불러와 체크아웃을 시작합니다. 장바구니가 비어 있으면 상품 목록으로의 이동(redirect)이 예약됩니다.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param session body request.CreateSessionRequest true "장바구니 키"
// @Success 201 {object} checkout.Snapshot "세션 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/checkout/sessions [post]
func (h *Handler) CreateSessionHandler(c echo.Context) error {
	req := new(request.CreateSessionRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	snap, err := h.checkout.Create(c.Request().Context(), req.CartKey)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, snap)
}

// GetSessionHandler godoc
// @Summary 체크아웃 세션 조회
// @Tags Checkout
// @Produce json
// @Param id path string true "세션 ID"
// @Success 200 {object} checkout.Snapshot "세션 상태"
// @Failure 404 {object} response.ErrorResponse "세션 없음"
// @Router /api/v1/checkout/sessions/{id} [get]
func (h *Handler) GetSessionHandler(c echo.Context) error {
	snap, err := h.checkout.Snapshot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// ConfirmHandler godoc
// @Summary 주문 수동 확정
// @Description 배송 정보를 검증하고 주문을 저장한 뒤 장바구니를 비웁니다. 확인 페이지로의 이동이 예약됩니다.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param id path string true "세션 ID"
// @Param confirm body request.ConfirmRequest true "배송 정보"
// @Success 200 {object} checkout.Snapshot "세션 상태"
// @Failure 400 {object} response.ErrorResponse "배송 정보 누락"
// @Failure 409 {object} response.ErrorResponse "확정할 수 없는 상태"
// @Router /api/v1/checkout/sessions/{id}/confirm [post]
func (h *Handler) ConfirmHandler(c echo.Context) error {
	req := new(request.ConfirmRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	// 필수 항목 누락은 세션 메시지에도 기록되어야 하므로 필수 여부는 체크아웃 서비스가 검증합니다.
	snap, err := h.checkout.ConfirmManual(c.Request().Context(), c.Param("id"), checkout.ShippingInfo{
		Name:       req.Shipping.Name,
		Address:    req.Shipping.Address,
		City:       req.Shipping.City,
		PostalCode: req.Shipping.PostalCode,
		Country:    req.Shipping.Country,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, snap)
}

// CreatePaymentOrderHandler godoc
// @Summary PayPal 주문 생성 (createOrder 콜백)
// @Tags Checkout
// @Produce json
// @Param id path string true "세션 ID"
// @Success 200 {object} response.PaymentOrderResponse "PayPal 주문 ID"
// @Failure 400 {object} response.ErrorResponse "결제 금액 오류"
// @Failure 409 {object} response.ErrorResponse "결제할 수 없는 상태"
// @Router /api/v1/checkout/sessions/{id}/paypal/orders [post]
func (h *Handler) CreatePaymentOrderHandler(c echo.Context) error {
	orderID, err := h.checkout.CreatePaymentOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.PaymentOrderResponse{OrderID: orderID})
}

// ApprovePaymentHandler godoc
// @Summary PayPal 결제 승인 (onApprove 콜백)
// @Description 주문을 확정(capture)하고 완료 메시지와 확인 페이지 이동을 예약합니다.
// @Description 확정에 실패하면 장바구니는 유지되고 세션은 실패 상태가 됩니다.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param id path string true "세션 ID"
// @Param approve body request.ApproveRequest true "PayPal 주문 ID"
// @Success 200 {object} checkout.Snapshot "세션 상태"
// @Router /api/v1/checkout/sessions/{id}/paypal/approve [post]
func (h *Handler) ApprovePaymentHandler(c echo.Context) error {
	req := new(request.ApproveRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	snap, err := h.checkout.ApprovePayment(c.Request().Context(), c.Param("id"), req.OrderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// CancelPaymentHandler godoc
// @Summary PayPal 결제 취소 (onCancel 콜백)
// @Tags Checkout
// @Produce json
// @Param id path string true "세션 ID"
// @Success 200 {object} checkout.Snapshot "세션 상태"
// @Router /api/v1/checkout/sessions/{id}/paypal/cancel [post]
func (h *Handler) CancelPaymentHandler(c echo.Context) error {
	snap, err := h.checkout.CancelPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// PaymentErrorHandler godoc
// @Summary PayPal 결제 오류 (onError 콜백)
// @Tags Checkout
// @Accept json
// @Produce json
// @Param id path string true "세션 ID"
// @Param error body request.PaymentErrorRequest false "오류 내용"
// @Success 200 {object} checkout.Snapshot "세션 상태"
// @Router /api/v1/checkout/sessions/{id}/paypal/error [post]
func (h *Handler) PaymentErrorHandler(c echo.Context) error {
	req := new(request.PaymentErrorRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	message := req.Message
	if message == "" {
		message = defaultPaymentErrorMessage
	}

	snap, err := h.checkout.FailPayment(c.Request().Context(), c.Param("id"), apperrors.New(apperrors.ExecutionFailed, message))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}
