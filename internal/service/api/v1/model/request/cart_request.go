// Package request v1 API의 요청 본문 모델을 정의합니다.
package request

import "encoding/json"

// CartEchoRequest 장바구니 에코 요청. 본문은 기록만 하고 저장하지 않습니다.
type CartEchoRequest struct {
	// 브라우저에 저장된 장바구니 Line 목록
	Cart json.RawMessage `json:"cart" swaggertype:"array,object"`
}

// AddLineRequest 장바구니 담기 요청
type AddLineRequest struct {
	// 상품 옵션(Variant) ID
	VariantID string `json:"variant_id" validate:"required" korean:"상품 옵션 ID" example:"44012345678901"`
	// 담을 수량
	Quantity int `json:"quantity" validate:"required,min=1" korean:"수량" example:"1"`
	// 상품명
	Title string `json:"title" validate:"required,max=512" korean:"상품명" example:"Classic Tee"`
	// 공급가. Shopify가 내려준 문자열 또는 숫자 그대로 전달합니다. 판매가는 서버에서 계산합니다.
	Price any `json:"price" validate:"required" korean:"가격" swaggertype:"string" example:"19.99"`
	// 대표 이미지 URL
	ImageURL string `json:"image" validate:"required" korean:"이미지" example:"https://cdn.shopify.com/s/files/tee.jpg"`
	// 색상 단어 (비어 있으면 옵션 제목의 첫 단어를 사용)
	Color string `json:"color" korean:"색상" example:"Navy"`
	// 옵션 제목 (예: "Navy / XL")
	VariantTitle string `json:"variant_title" korean:"옵션 제목" example:"Navy / XL"`
}
