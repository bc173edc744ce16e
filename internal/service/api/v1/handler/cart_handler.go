package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/httputil"
	"github.com/darkkaiser/storefront-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/pricing"
	"github.com/labstack/echo/v4"
)

// CartEchoHandler godoc
// @Summary 장바구니 에코
// @Description 브라우저가 보낸 장바구니를 기록만 하고 성공 메시지를 반환합니다. 어떤 저장소에도 쓰지 않습니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param cart body request.CartEchoRequest true "장바구니"
// @Success 200 {object} cart.EchoResponse "Cart updated successfully"
// @Failure 500 {object} cart.EchoResponse "Failed to update cart"
// @Router /api/v1/cart [post]
func (h *Handler) CartEchoHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)

	var req *request.CartEchoRequest
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err != nil || req == nil {
		h.log(c).WithError(err).Error(constants.LogMsgCartEchoError)
		return c.JSON(http.StatusInternalServerError, cart.EchoResponse{Error: constants.ErrMsgCartEchoFailed})
	}

	h.log(c).WithField("cart", string(req.Cart)).Info(constants.LogMsgCartEchoed)

	return c.JSON(http.StatusOK, cart.EchoResponse{Message: constants.MsgCartUpdated})
}

// GetCartHandler godoc
// @Summary 장바구니 조회
// @Tags Cart
// @Produce json
// @Param key path string true "장바구니 키"
// @Success 200 {object} response.CartResponse "장바구니와 합계"
// @Failure 404 {object} response.ErrorResponse "빈 장바구니"
// @Router /api/v1/carts/{key} [get]
func (h *Handler) GetCartHandler(c echo.Context) error {
	ct, err := h.carts.Load(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(ct))
}

// AddLineHandler godoc
// @Summary 장바구니 담기
// @Description 공급가에 판매가 배수를 적용하고 색상을 정규화하여 저장합니다.
// @Description 같은 옵션이 이미 있으면 수량을 더합니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param key path string true "장바구니 키"
// @Param line body request.AddLineRequest true "담을 상품"
// @Success 200 {object} response.CartResponse "변경된 장바구니"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/carts/{key}/lines [post]
func (h *Handler) AddLineHandler(c echo.Context) error {
	req := new(request.AddLineRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	colorToken := req.Color
	if colorToken == "" {
		colorToken = req.VariantTitle
	}

	ct, err := h.carts.Add(c.Request().Context(), c.Param("key"), cart.LineInput{
		VariantID:  req.VariantID,
		Quantity:   req.Quantity,
		Title:      req.Title,
		Price:      pricing.Adjust(req.Price).Display,
		ImageURL:   req.ImageURL,
		ColorToken: colorToken,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(ct))
}

// ClearCartHandler godoc
// @Summary 장바구니 비우기
// @Tags Cart
// @Produce json
// @Param key path string true "장바구니 키"
// @Success 200 {object} response.SuccessResponse "성공"
// @Router /api/v1/carts/{key} [delete]
func (h *Handler) ClearCartHandler(c echo.Context) error {
	if err := h.carts.Clear(c.Request().Context(), c.Param("key")); err != nil {
		return err
	}
	return httputil.Success(c)
}

func cartResponse(ct cart.Cart) response.CartResponse {
	lines := ct.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return response.CartResponse{Lines: lines, Total: ct.TotalString()}
}
