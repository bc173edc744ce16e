package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 상품 목록 또는 단일 상품 조회 (Light)
// @Description id가 있으면 해당 상품 하나를, 없으면 전체 목록을 반환합니다.
// @Description 각 상품에는 id, title, variants와 재고 상태(inventory)만 포함됩니다.
// @Tags Catalog
// @Produce json
// @Param id query string false "상품 ID"
// @Success 200 {array} catalog.Product "상품 목록 (id가 있으면 단일 객체)"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 500 {object} response.ErrorResponse "업스트림 오류"
// @Failure 503 {object} response.ErrorResponse "업스트림 일시 중단"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	if id := strings.TrimSpace(c.QueryParam("id")); id != "" {
		p, err := h.catalog.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, p)
	}

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ProductDetailsHandler godoc
// @Summary 상품 상세 정보 조회 (Heavy)
// @Description 설명 HTML(정리된 안전한 HTML), 이미지, 메타필드를 반환합니다.
// @Tags Catalog
// @Produce json
// @Param id query string true "상품 ID"
// @Success 200 {object} catalog.Details "상세 정보"
// @Failure 400 {object} response.ErrorResponse "상품 ID 누락"
// @Failure 500 {object} response.ErrorResponse "조회 실패"
// @Router /api/v1/product-details [get]
func (h *Handler) ProductDetailsHandler(c echo.Context) error {
	id := strings.TrimSpace(c.QueryParam("id"))
	if id == "" {
		return NewErrProductIDRequired()
	}

	d, err := h.catalog.LoadDetails(c.Request().Context(), id)
	if err != nil {
		h.log(c).WithField("product_id", id).WithError(err).Error("상품 상세 정보 조회 실패")
		return NewErrProductDetailsFailed()
	}

	return c.JSON(http.StatusOK, d)
}

// FullProductHandler godoc
// @Summary 상품 상세 화면용 레코드 조회
// @Description Light, Heavy, 재고 조회를 동시에 수행하여 조합한 결과를 반환합니다.
// @Description Heavy 또는 재고 조회가 실패하면 대체 값이 채워지고 details.degraded가 true가 됩니다.
// @Tags Catalog
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} catalog.FullProduct "상품 상세 레코드"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 500 {object} response.ErrorResponse "업스트림 오류"
// @Router /api/v1/products/{id}/full [get]
func (h *Handler) FullProductHandler(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewErrProductIDRequired()
	}

	full, err := h.catalog.Assemble(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, full)
}
