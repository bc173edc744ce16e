package catalog

// 재고 상태 문자열
const (
	StockUnavailable = "Stock Info Unavailable"
	StockNoInfo      = "No Inventory Info"
	StockOut         = "Out of Stock"
)

// Variant 상품 옵션. 가격은 공급가(RawPrice)와 변환된 판매가/비교가를 함께 가집니다.
type Variant struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	RawPrice        string  `json:"price"`
	InventoryItemID string  `json:"inventory_item_id,omitempty"`
	DisplayPrice    float64 `json:"display_price"`
	ComparePrice    float64 `json:"compare_price"`
	Color           string  `json:"color"`
}

// Product 목록 화면에 필요한 최소 필드만 담은 상품 (Light)
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	Variants    []Variant `json:"variants"`

	// InventoryStatus 첫 번째 옵션의 재고 상태. 예: "In Stock (5)", "Out of Stock"
	InventoryStatus string `json:"inventory,omitempty"`
}

// FirstInventoryItemID 첫 번째 옵션의 재고 항목 ID. 없으면 빈 문자열입니다.
func (p Product) FirstInventoryItemID() string {
	if len(p.Variants) == 0 {
		return ""
	}
	return p.Variants[0].InventoryItemID
}

// Image 상품 이미지
type Image struct {
	ID         string   `json:"id"`
	Src        string   `json:"src"`
	Alt        string   `json:"alt,omitempty"`
	VariantIDs []string `json:"variant_ids"`
}

// Metafield 상품에 연결된 사용자 정의 필드
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     any    `json:"value"`
	Type      string `json:"type,omitempty"`
}

// Details 상세 화면에서만 필요한 무거운 필드 (Heavy)
type Details struct {
	DescriptionHTML string      `json:"body_html"`
	Images          []Image     `json:"images"`
	CustomFields    []Metafield `json:"metafields"`

	// Degraded 업스트림 조회에 실패하여 빈 값으로 대체되었는지 여부
	Degraded bool `json:"degraded,omitempty"`
}

// emptyDetails 상세 조회 실패 시 사용하는 대체 값
func emptyDetails() Details {
	return Details{
		Images:       []Image{},
		CustomFields: []Metafield{},
		Degraded:     true,
	}
}

// FullProduct Light, Heavy, 재고 조회 결과를 합친 상품 상세 레코드
type FullProduct struct {
	Product
	Details Details `json:"details"`

	// MainImage 첫 번째 옵션에 연결된 이미지. 없으면 첫 번째 이미지, 이미지가 없으면 nil입니다.
	MainImage *Image `json:"main_image"`
}
