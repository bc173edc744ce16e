package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "shpat_test"

// fakeShopify 경로별 응답을 지정할 수 있는 테스트용 Shopify 서버
type fakeShopify struct {
	*httptest.Server

	hits     atomic.Int64
	handlers map[string]http.HandlerFunc
}

func newFakeShopify(t *testing.T, handlers map[string]http.HandlerFunc) *fakeShopify {
	t.Helper()

	fs := &fakeShopify{handlers: handlers}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)

		if r.Header.Get(accessTokenHeader) != testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		h, ok := fs.handlers[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(fs.Close)

	return fs
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestClient(baseURL string, cache Cache) *ShopifyClient {
	f := fetcher.New(fetcher.Config{
		Timeout:        2 * time.Second,
		MaxRetries:     0,
		DisableLogging: true,
	})

	return NewShopifyClient(f, cache, ShopifyConfig{
		BaseURL:            baseURL,
		APIVersion:         "2024-01",
		AccessToken:        testToken,
		RevalidateAfter:    time.Minute,
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Minute,
	})
}

const productsJSON = `{"products":[
	{"id":1,"title":"Tee","vendor":"Acme","product_type":"Shirt","variants":[
		{"id":11,"title":"Navy / M","price":"10.00","inventory_item_id":111}
	]},
	{"id":2,"title":"Cap","variants":[]}
]}`

func TestShopifyClient_ListProducts(t *testing.T) {
	t.Parallel()

	var gotFields atomic.Value
	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products.json": func(w http.ResponseWriter, r *http.Request) {
			gotFields.Store(r.URL.Query().Get("fields"))
			jsonBody(productsJSON)(w, r)
		},
	})

	c := newTestClient(fs.URL, NewMemoryCache())
	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, lightFields, gotFields.Load())
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Tee", p.Title)
	assert.Equal(t, "Acme", p.Vendor)
	require.Len(t, p.Variants, 1)

	v := p.Variants[0]
	assert.Equal(t, "11", v.ID)
	assert.Equal(t, "10.00", v.RawPrice)
	assert.Equal(t, "111", v.InventoryItemID)
	assert.InDelta(t, 20.0, v.DisplayPrice, 1e-9)
	assert.InDelta(t, 40.0, v.ComparePrice, 1e-9)
	assert.Equal(t, "navy", v.Color)

	assert.Empty(t, products[1].Variants)
	assert.NotNil(t, products[1].Variants)
}

func TestShopifyClient_CachesResponses(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products.json": jsonBody(productsJSON),
	})

	c := newTestClient(fs.URL, NewMemoryCache())
	for i := 0; i < 3; i++ {
		_, err := c.ListProducts(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), fs.hits.Load())
}

func TestShopifyClient_RefetchesAfterRevalidateWindow(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products.json": jsonBody(productsJSON),
	})

	now := time.Now()
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	c := newTestClient(fs.URL, cache)
	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), fs.hits.Load())
}

func TestShopifyClient_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{})

	c := newTestClient(fs.URL, NewMemoryCache())
	_, err := c.GetProduct(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestShopifyClient_SharedFetchSurvivesCallerCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var startOnce, releaseOnce sync.Once

	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products/1.json": func(w http.ResponseWriter, r *http.Request) {
			startOnce.Do(func() { close(started) })
			<-release
			jsonBody(`{"product":{"id":1,"title":"Tee","variants":[]}}`)(w, r)
		},
	})
	t.Cleanup(func() { releaseOnce.Do(func() { close(release) }) })

	c := newTestClient(fs.URL, NewMemoryCache())

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()

	errA := make(chan error, 1)
	go func() {
		_, err := c.GetProduct(ctxA, "1")
		errA <- err
	}()
	<-started

	type result struct {
		product Product
		err     error
	}
	resB := make(chan result, 1)
	go func() {
		p, err := c.GetProduct(context.Background(), "1")
		resB <- result{p, err}
	}()

	// 두 번째 호출자가 진행 중인 조회에 합류할 시간을 줍니다.
	time.Sleep(50 * time.Millisecond)
	cancelA()

	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("취소된 호출자가 공유 조회를 기다리고 있습니다")
	}

	releaseOnce.Do(func() { close(release) })

	select {
	case res := <-resB:
		require.NoError(t, res.err)
		assert.Equal(t, "Tee", res.product.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("두 번째 호출자가 응답을 받지 못했습니다")
	}

	assert.Equal(t, int64(1), fs.hits.Load())
}

func TestShopifyClient_GetProductDetails(t *testing.T) {
	t.Parallel()

	t.Run("메타필드 포함", func(t *testing.T) {
		t.Parallel()

		fs := newFakeShopify(t, map[string]http.HandlerFunc{
			"/admin/api/2024-01/products/1.json": jsonBody(`{"product":{
				"body_html":"<p>hi</p>",
				"images":[{"id":5,"src":"https://cdn/x.png","variant_ids":[11,12]}]
			}}`),
			"/admin/api/2024-01/products/1/metafields.json": jsonBody(`{"metafields":[
				{"namespace":"custom","key":"material","value":"cotton","type":"single_line_text_field"}
			]}`),
		})

		c := newTestClient(fs.URL, NewMemoryCache())
		d, err := c.GetProductDetails(context.Background(), "1")
		require.NoError(t, err)

		assert.Equal(t, "<p>hi</p>", d.DescriptionHTML)
		require.Len(t, d.Images, 1)
		assert.Equal(t, []string{"11", "12"}, d.Images[0].VariantIDs)
		require.Len(t, d.CustomFields, 1)
		assert.Equal(t, "material", d.CustomFields[0].Key)
		assert.Equal(t, "cotton", d.CustomFields[0].Value)
	})

	t.Run("메타필드 실패 시 빈 목록", func(t *testing.T) {
		t.Parallel()

		fs := newFakeShopify(t, map[string]http.HandlerFunc{
			"/admin/api/2024-01/products/1.json": jsonBody(`{"product":{"body_html":"","images":[]}}`),
		})

		c := newTestClient(fs.URL, NewMemoryCache())
		d, err := c.GetProductDetails(context.Background(), "1")
		require.NoError(t, err)
		assert.NotNil(t, d.CustomFields)
		assert.Empty(t, d.CustomFields)
	})
}

func TestShopifyClient_GetInventoryAvailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "재고 있음", body: `{"inventory_levels":[{"available":7}]}`, want: 7},
		{name: "재고 레벨 없음", body: `{"inventory_levels":[]}`, want: 0},
		{name: "available null", body: `{"inventory_levels":[{"available":null}]}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotIDs atomic.Value
			fs := newFakeShopify(t, map[string]http.HandlerFunc{
				"/admin/api/2024-01/inventory_levels.json": func(w http.ResponseWriter, r *http.Request) {
					gotIDs.Store(r.URL.Query().Get("inventory_item_ids"))
					jsonBody(tt.body)(w, r)
				},
			})

			c := newTestClient(fs.URL, NewMemoryCache())
			n, err := c.GetInventoryAvailable(context.Background(), "111")
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, "111", gotIDs.Load())
		})
	}
}

func TestShopifyClient_InvalidJSON(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products.json": jsonBody(`not json`),
	})

	c := newTestClient(fs.URL, NewMemoryCache())
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
}

func TestShopifyClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{
		"/admin/api/2024-01/products.json": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
	})

	c := newTestClient(fs.URL, NewMemoryCache())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.ListProducts(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, "open", c.BreakerState())

	hits := fs.hits.Load()
	_, err := c.ListProducts(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.Equal(t, hits, fs.hits.Load(), "열린 회로는 업스트림을 호출하지 않아야 합니다")
}

func TestShopifyClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	fs := newFakeShopify(t, map[string]http.HandlerFunc{})

	c := newTestClient(fs.URL, NewMemoryCache())
	for i := 0; i < 5; i++ {
		_, err := c.GetProduct(context.Background(), "missing")
		require.Error(t, err)
	}

	assert.Equal(t, "closed", c.BreakerState())
}
