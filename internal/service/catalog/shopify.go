package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/color"
	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
	"github.com/darkkaiser/storefront-server/internal/service/pricing"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

const (
	lightFields = "id,title,vendor,product_type,variants"
	heavyFields = "body_html,images"

	accessTokenHeader = "X-Shopify-Access-Token"

	defaultRevalidateAfter = 300 * time.Second
	defaultFetchTimeout    = 60 * time.Second
)

// Upstream 상품, 상세, 재고 정보를 제공하는 업스트림
type Upstream interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	GetProductDetails(ctx context.Context, id string) (Details, error)
	GetInventoryAvailable(ctx context.Context, inventoryItemID string) (int, error)
}

// ShopifyConfig ShopifyClient 생성 설정
type ShopifyConfig struct {
	// BaseURL 상점 주소. 예: https://my-shop.myshopify.com
	BaseURL     string
	APIVersion  string
	AccessToken string

	// RevalidateAfter 응답을 캐시에 보관하는 시간. 0 이하이면 300초입니다.
	RevalidateAfter time.Duration

	// BreakerMaxFailures 연속 실패가 이 횟수에 도달하면 회로가 열립니다.
	BreakerMaxFailures uint32

	// BreakerOpenTimeout 열린 회로가 반열림(half-open) 상태로 전환되기까지의 시간
	BreakerOpenTimeout time.Duration

	// FetchTimeout 재시도를 포함한 업스트림 조회 한 번의 제한 시간. 0 이하이면 60초입니다.
	FetchTimeout time.Duration
}

// ShopifyClient Shopify Admin REST API 클라이언트입니다.
//
// 모든 응답 본문은 재검증 주기 동안 캐시되며, 같은 키에 대한 동시 조회는 하나의 업스트림 호출로 합쳐집니다.
// 업스트림 장애(Unavailable)가 연속되면 회로 차단기가 열려 일정 시간 호출을 차단합니다.
type ShopifyClient struct {
	fetcher fetcher.Fetcher
	cache   Cache
	breaker *gobreaker.CircuitBreaker[[]byte]
	group   singleflight.Group

	apiBase      string
	accessToken  string
	ttl          time.Duration
	fetchTimeout time.Duration
}

var _ Upstream = (*ShopifyClient)(nil)

// NewShopifyClient 새로운 ShopifyClient를 생성합니다.
func NewShopifyClient(f fetcher.Fetcher, cache Cache, cfg ShopifyConfig) *ShopifyClient {
	ttl := cfg.RevalidateAfter
	if ttl <= 0 {
		ttl = defaultRevalidateAfter
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "shopify",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// 404, 파싱 실패 등은 업스트림 장애가 아니므로 실패로 집계하지 않습니다.
		IsSuccessful: func(err error) bool {
			return err == nil || !apperrors.Is(err, apperrors.Unavailable)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			applog.WithComponentAndFields(component, applog.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("회로 차단기 상태 변경")
		},
	})

	return &ShopifyClient{
		fetcher:     f,
		cache:       cache,
		breaker:     breaker,
		apiBase:      strings.TrimRight(cfg.BaseURL, "/") + "/admin/api/" + cfg.APIVersion,
		accessToken:  cfg.AccessToken,
		ttl:          ttl,
		fetchTimeout: fetchTimeout,
	}
}

// ListProducts 전체 상품 목록을 Light 필드만으로 조회합니다.
func (c *ShopifyClient) ListProducts(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, "/products.json", url.Values{"fields": {lightFields}})
	if err != nil {
		return nil, err
	}

	products := gjson.GetBytes(body, "products")
	if !products.IsArray() {
		return nil, NewErrInvalidResponse("/products.json", "products 배열이 없습니다")
	}

	result := make([]Product, 0, len(products.Array()))
	for _, p := range products.Array() {
		result = append(result, parseProduct(p))
	}

	return result, nil
}

// GetProduct 상품 하나를 Light 필드만으로 조회합니다.
func (c *ShopifyClient) GetProduct(ctx context.Context, id string) (Product, error) {
	path := "/products/" + url.PathEscape(id) + ".json"

	body, err := c.get(ctx, path, url.Values{"fields": {lightFields}})
	if err != nil {
		return Product{}, err
	}

	p := gjson.GetBytes(body, "product")
	if !p.IsObject() {
		return Product{}, NewErrProductNotFound(id)
	}

	return parseProduct(p), nil
}

// GetProductDetails 상품 설명(가공 전 HTML), 이미지, 메타필드를 조회합니다.
// 메타필드 조회에 실패하면 빈 목록을 사용합니다.
func (c *ShopifyClient) GetProductDetails(ctx context.Context, id string) (Details, error) {
	escaped := url.PathEscape(id)

	body, err := c.get(ctx, "/products/"+escaped+".json", url.Values{"fields": {heavyFields}})
	if err != nil {
		return Details{}, err
	}

	p := gjson.GetBytes(body, "product")
	if !p.IsObject() {
		return Details{}, NewErrProductNotFound(id)
	}

	d := Details{
		DescriptionHTML: p.Get("body_html").String(),
		Images:          parseImages(p.Get("images")),
		CustomFields:    []Metafield{},
	}

	metaBody, err := c.get(ctx, "/products/"+escaped+"/metafields.json", nil)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"product_id": id,
			"error":      err,
		}).Warn("메타필드 조회 실패: 빈 목록으로 대체합니다")
	} else {
		d.CustomFields = parseMetafields(gjson.GetBytes(metaBody, "metafields"))
	}

	return d, nil
}

// GetInventoryAvailable 재고 항목의 판매 가능 수량을 조회합니다. 재고 레벨이 없으면 0을 반환합니다.
func (c *ShopifyClient) GetInventoryAvailable(ctx context.Context, inventoryItemID string) (int, error) {
	body, err := c.get(ctx, "/inventory_levels.json", url.Values{"inventory_item_ids": {inventoryItemID}})
	if err != nil {
		return 0, err
	}

	levels := gjson.GetBytes(body, "inventory_levels")
	if levels.Exists() && !levels.IsArray() {
		return 0, NewErrInvalidResponse("/inventory_levels.json", "inventory_levels가 배열이 아닙니다")
	}

	return int(levels.Get("0.available").Int()), nil
}

// get 캐시 → singleflight → 회로 차단기 → Fetcher 체인 순서로 응답 본문을 가져옵니다.
func (c *ShopifyClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.apiBase + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if body, err := c.cache.Get(ctx, target); err == nil {
		return body, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		applog.WithComponentAndFields(component, applog.Fields{
			"path":  path,
			"error": err,
		}).Warn("캐시 조회 실패: 업스트림에서 직접 조회합니다")
	}

	// 합쳐진 조회는 호출자의 취소와 무관하게 자체 제한 시간 안에서 수행합니다.
	ch := c.group.DoChan(target, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		return c.fetch(fetchCtx, path, target)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// fetch 회로 차단기를 거쳐 업스트림을 호출하고, 유효한 JSON 응답을 캐시에 저장합니다.
func (c *ShopifyClient) fetch(ctx context.Context, path, target string) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return fetcher.FetchBytes(ctx, c.fetcher, fetcher.Request{
			Method: http.MethodGet,
			URL:    target,
			Header: http.Header{accessTokenHeader: {c.accessToken}},
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, apperrors.Wrap(err, apperrors.Unavailable, ErrUpstreamUnavailable.Error())
		}
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, NewErrInvalidResponse(path, "JSON 형식이 아닙니다")
	}

	if err := c.cache.Set(ctx, target, body, c.ttl); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"path":  path,
			"error": err,
		}).Warn("캐시 저장 실패")
	}

	return body, nil
}

// BreakerState 회로 차단기의 현재 상태 ("closed", "half-open", "open")
func (c *ShopifyClient) BreakerState() string {
	return c.breaker.State().String()
}

func parseProduct(p gjson.Result) Product {
	product := Product{
		ID:          p.Get("id").String(),
		Title:       p.Get("title").String(),
		Vendor:      p.Get("vendor").String(),
		ProductType: p.Get("product_type").String(),
		Variants:    []Variant{},
	}

	p.Get("variants").ForEach(func(_, v gjson.Result) bool {
		raw := v.Get("price").String()
		price := pricing.Adjust(raw)

		product.Variants = append(product.Variants, Variant{
			ID:              v.Get("id").String(),
			Title:           v.Get("title").String(),
			RawPrice:        raw,
			InventoryItemID: v.Get("inventory_item_id").String(),
			DisplayPrice:    price.Display,
			ComparePrice:    price.Compare,
			Color:           color.FromVariantTitle(v.Get("title").String()),
		})
		return true
	})

	return product
}

func parseImages(r gjson.Result) []Image {
	images := []Image{}

	r.ForEach(func(_, img gjson.Result) bool {
		variantIDs := []string{}
		img.Get("variant_ids").ForEach(func(_, id gjson.Result) bool {
			variantIDs = append(variantIDs, id.String())
			return true
		})

		images = append(images, Image{
			ID:         img.Get("id").String(),
			Src:        img.Get("src").String(),
			Alt:        img.Get("alt").String(),
			VariantIDs: variantIDs,
		})
		return true
	})

	return images
}

func parseMetafields(r gjson.Result) []Metafield {
	fields := []Metafield{}

	r.ForEach(func(_, m gjson.Result) bool {
		fields = append(fields, Metafield{
			Namespace: m.Get("namespace").String(),
			Key:       m.Get("key").String(),
			Value:     m.Get("value").Value(),
			Type:      m.Get("type").String(),
		})
		return true
	})

	return fields
}
