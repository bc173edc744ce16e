package handler

import (
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/request"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// CreatePaymentHandler godoc
// @Summary 결제 생성
// @Description PayPal에 결제(intent: sale)를 생성하고 승인 링크를 포함한 결과를 반환합니다.
// @Tags Payment
// @Accept json
// @Produce json
// @Param payment body request.CreatePaymentRequest true "결제 금액과 통화"
// @Success 201 {object} payment.Payment "생성된 결제"
// @Failure 400 {object} response.ErrorResponse "잘못된 금액 또는 통화"
// @Failure 500 {object} response.ErrorResponse "자격 증명 누락 또는 PayPal 오류"
// @Router /api/v1/payments [post]
func (h *Handler) CreatePaymentHandler(c echo.Context) error {
	req := new(request.CreatePaymentRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	currency := req.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}

	p, err := h.payments.CreatePayment(c.Request().Context(), req.Amount, currency)
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"payment_id": p.ID,
		"amount":     req.Amount,
		"currency":   currency,
	}).Info("결제 생성 완료")

	return c.JSON(http.StatusCreated, p)
}
