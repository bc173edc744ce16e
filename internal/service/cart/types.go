package cart

import (
	"github.com/darkkaiser/storefront-server/internal/service/pricing"
)

// 클라이언트별 저장 슬롯
const (
	// SlotCart 장바구니 라인 배열이 저장되는 슬롯
	SlotCart = "cart"

	// SlotLastOrder 마지막으로 확정된 주문이 저장되는 슬롯
	SlotLastOrder = "lastOrder"
)

// Line 장바구니의 한 줄. 같은 VariantID를 가진 Line은 장바구니에 최대 하나만 존재합니다.
//
// JSON 필드명은 클라이언트 로컬 저장소에 기록되던 형식을 그대로 따릅니다.
type Line struct {
	VariantID string  `json:"id"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image"`
	Color     string  `json:"color"`
}

// Subtotal 판매가 × 수량
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart 처음 추가된 순서를 유지하는 Line 목록
type Cart struct {
	Lines []Line `json:"lines"`
}

// IsEmpty 장바구니에 Line이 없는지 확인합니다.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total 모든 Line의 판매가 × 수량의 합. 조회할 때마다 새로 계산합니다.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// TotalString 소수점 둘째 자리까지 표시한 합계 금액
func (c Cart) TotalString() string {
	return pricing.FormatAmount(c.Total())
}

// LineInput 장바구니 담기 요청
type LineInput struct {
	VariantID string
	Quantity  int
	Title     string

	// Price 이미 판매가로 변환된 가격
	Price float64

	ImageURL string

	// ColorToken 정규화되기 전의 색상 단어
	ColorToken string
}
