// Package catalog Shopify에서 상품 정보를 조회하고, 목록/상세 화면에 필요한 형태로 조합합니다.
//
// 상품 조회는 두 단계로 나뉩니다.
//   - Light: id, title, variants 등 목록 화면에 필요한 최소 필드
//   - Heavy: 설명 HTML, 이미지, 메타필드 등 상세 화면에서만 필요한 필드
//
// Heavy 조회와 재고 조회는 실패해도 대체 값으로 처리되며, Light 조회 실패만 호출자에게 전달됩니다.
package catalog

import (
	"context"
	"fmt"
	"sync"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"golang.org/x/sync/errgroup"
)

// component 카탈로그 서비스 로깅용 컴포넌트 이름
const component = "catalog.aggregator"

const defaultInventoryConcurrency = 8

// Aggregator Light, Heavy, 재고 조회를 조합하는 서비스입니다.
type Aggregator struct {
	upstream Upstream

	// inventoryConcurrency 목록 조회 시 동시에 수행할 재고 조회의 최대 개수
	inventoryConcurrency int
}

// NewAggregator 새로운 Aggregator를 생성합니다. concurrency가 0 이하이면 8을 사용합니다.
func NewAggregator(upstream Upstream, concurrency int) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultInventoryConcurrency
	}

	return &Aggregator{
		upstream:             upstream,
		inventoryConcurrency: concurrency,
	}
}

// ListProducts 상품 목록을 조회하고 상품마다 재고 상태를 병렬로 채웁니다.
// 목록 조회 실패는 그대로 반환되며, 재고 조회 실패는 상태 문자열로 대체됩니다.
func (a *Aggregator) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := a.upstream.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.inventoryConcurrency)

	for i := range products {
		g.Go(func() error {
			products[i].InventoryStatus = a.InventoryStatus(gctx, products[i].FirstInventoryItemID())
			return nil
		})
	}
	_ = g.Wait()

	return products, nil
}

// GetProduct 상품 하나의 Light 필드와 재고 상태를 조회합니다.
func (a *Aggregator) GetProduct(ctx context.Context, id string) (Product, error) {
	p, err := a.upstream.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}

	p.InventoryStatus = a.InventoryStatus(ctx, p.FirstInventoryItemID())

	return p, nil
}

// LoadDetails Heavy 필드를 조회하고 설명 HTML을 정리합니다. 조회 실패를 그대로 반환합니다.
func (a *Aggregator) LoadDetails(ctx context.Context, id string) (Details, error) {
	d, err := a.upstream.GetProductDetails(ctx, id)
	if err != nil {
		return Details{}, err
	}

	d.DescriptionHTML = Sanitize(d.DescriptionHTML)
	if d.Images == nil {
		d.Images = []Image{}
	}
	if d.CustomFields == nil {
		d.CustomFields = []Metafield{}
	}

	return d, nil
}

// GetProductDetails Heavy 필드를 조회합니다. 실패하면 빈 설명, 빈 이미지 목록, 빈 메타필드로 대체하고 Degraded를 표시합니다.
func (a *Aggregator) GetProductDetails(ctx context.Context, id string) Details {
	d, err := a.LoadDetails(ctx, id)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"product_id": id,
			"error":      err,
		}).Warn("상품 상세 조회 실패: 빈 값으로 대체합니다")

		return emptyDetails()
	}

	return d
}

// Assemble Light, Heavy, 재고 조회를 동시에 수행하여 상품 상세 레코드를 만듭니다.
//
// 재고 조회는 Light 결과의 재고 항목 ID가 필요하므로 Light 조회 직후 같은 고루틴에서 이어서 수행합니다.
// Light 조회가 실패하면 에러를 반환하고, Heavy와 재고 조회는 각각 독립적으로 대체 값을 사용합니다.
func (a *Aggregator) Assemble(ctx context.Context, id string) (FullProduct, error) {
	var (
		mu      sync.Mutex
		product Product
		details Details
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := a.upstream.GetProduct(gctx, id)
		if err != nil {
			return err
		}
		p.InventoryStatus = a.InventoryStatus(gctx, p.FirstInventoryItemID())

		mu.Lock()
		product = p
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		d := a.GetProductDetails(gctx, id)

		mu.Lock()
		details = d
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return FullProduct{}, err
	}

	var variantID string
	if len(product.Variants) > 0 {
		variantID = product.Variants[0].ID
	}

	return FullProduct{
		Product:   product,
		Details:   details,
		MainImage: MainImage(details.Images, variantID),
	}, nil
}

// InventoryStatus 재고 항목의 판매 가능 수량을 상태 문자열로 변환합니다. 에러를 반환하지 않습니다.
func (a *Aggregator) InventoryStatus(ctx context.Context, inventoryItemID string) string {
	if inventoryItemID == "" {
		return StockNoInfo
	}

	available, err := a.upstream.GetInventoryAvailable(ctx, inventoryItemID)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"inventory_item_id": inventoryItemID,
			"error":             err,
		}).Warn("재고 조회 실패")

		return StockUnavailable
	}

	return FormatStock(available)
}

// FormatStock 판매 가능 수량이 양수이면 "In Stock (N)", 그 외에는 "Out of Stock"을 반환합니다.
func FormatStock(available int) string {
	if available > 0 {
		return fmt.Sprintf("In Stock (%d)", available)
	}
	return StockOut
}
