package catalog

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockUpstream testify/mock 기반 Upstream
type mockUpstream struct {
	mock.Mock
}

func (m *mockUpstream) ListProducts(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]Product)
	return products, args.Error(1)
}

func (m *mockUpstream) GetProduct(ctx context.Context, id string) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *mockUpstream) GetProductDetails(ctx context.Context, id string) (Details, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Details), args.Error(1)
}

func (m *mockUpstream) GetInventoryAvailable(ctx context.Context, inventoryItemID string) (int, error) {
	args := m.Called(ctx, inventoryItemID)
	return args.Int(0), args.Error(1)
}

var errUpstream = apperrors.New(apperrors.Unavailable, "upstream down")

func tee() Product {
	return Product{
		ID:    "1",
		Title: "Tee",
		Variants: []Variant{
			{ID: "v1", InventoryItemID: "inv-1", DisplayPrice: 20},
		},
	}
}

func TestFormatStock(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "In Stock (5)", FormatStock(5))
	assert.Equal(t, "Out of Stock", FormatStock(0))
	assert.Equal(t, "Out of Stock", FormatStock(-3))
}

func TestAggregator_InventoryStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		itemID string
		avail  int
		err    error
		want   string
	}{
		{name: "재고 있음", itemID: "inv", avail: 3, want: "In Stock (3)"},
		{name: "재고 없음", itemID: "inv", avail: 0, want: StockOut},
		{name: "조회 실패", itemID: "inv", err: errUpstream, want: StockUnavailable},
		{name: "재고 항목 없음", itemID: "", want: StockNoInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			up := &mockUpstream{}
			if tt.itemID != "" {
				up.On("GetInventoryAvailable", mock.Anything, tt.itemID).Return(tt.avail, tt.err)
			}

			a := NewAggregator(up, 2)
			assert.Equal(t, tt.want, a.InventoryStatus(context.Background(), tt.itemID))
			up.AssertExpectations(t)
		})
	}
}

func TestAggregator_ListProducts(t *testing.T) {
	t.Parallel()

	up := &mockUpstream{}
	up.On("ListProducts", mock.Anything).Return([]Product{
		tee(),
		{ID: "2", Title: "Cap", Variants: []Variant{{ID: "v2", InventoryItemID: "inv-2"}}},
		{ID: "3", Title: "Gift card", Variants: []Variant{}},
	}, nil)
	up.On("GetInventoryAvailable", mock.Anything, "inv-1").Return(4, nil)
	up.On("GetInventoryAvailable", mock.Anything, "inv-2").Return(0, errUpstream)

	products, err := NewAggregator(up, 2).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "In Stock (4)", products[0].InventoryStatus)
	assert.Equal(t, StockUnavailable, products[1].InventoryStatus)
	assert.Equal(t, StockNoInfo, products[2].InventoryStatus)
}

func TestAggregator_ListProducts_LightFailurePropagates(t *testing.T) {
	t.Parallel()

	up := &mockUpstream{}
	up.On("ListProducts", mock.Anything).Return(nil, errUpstream)

	_, err := NewAggregator(up, 0).ListProducts(context.Background())
	assert.ErrorIs(t, err, errUpstream)
}

func TestAggregator_GetProductDetails_Degrades(t *testing.T) {
	t.Parallel()

	up := &mockUpstream{}
	up.On("GetProductDetails", mock.Anything, "1").Return(Details{}, errUpstream)

	d := NewAggregator(up, 0).GetProductDetails(context.Background(), "1")
	assert.True(t, d.Degraded)
	assert.Equal(t, "", d.DescriptionHTML)
	assert.NotNil(t, d.Images)
	assert.Empty(t, d.Images)
	assert.NotNil(t, d.CustomFields)
	assert.Empty(t, d.CustomFields)
}

func TestAggregator_LoadDetails_Sanitizes(t *testing.T) {
	t.Parallel()

	up := &mockUpstream{}
	up.On("GetProductDetails", mock.Anything, "1").Return(Details{
		DescriptionHTML: `<p>x</p><script>bad()</script>`,
	}, nil)

	d, err := NewAggregator(up, 0).LoadDetails(context.Background(), "1")
	require.NoError(t, err)
	assert.NotContains(t, d.DescriptionHTML, "<script")
	assert.Contains(t, d.DescriptionHTML, "<p>x</p>")
	assert.False(t, d.Degraded)
}

func TestAggregator_Assemble(t *testing.T) {
	t.Parallel()

	t.Run("모두 성공", func(t *testing.T) {
		t.Parallel()

		up := &mockUpstream{}
		up.On("GetProduct", mock.Anything, "1").Return(tee(), nil)
		up.On("GetInventoryAvailable", mock.Anything, "inv-1").Return(2, nil)
		up.On("GetProductDetails", mock.Anything, "1").Return(Details{
			DescriptionHTML: "<p>d</p>",
			Images: []Image{
				{ID: "a", Src: "a.png"},
				{ID: "b", Src: "b.png", VariantIDs: []string{"v1"}},
			},
		}, nil)

		full, err := NewAggregator(up, 0).Assemble(context.Background(), "1")
		require.NoError(t, err)

		assert.Equal(t, "Tee", full.Title)
		assert.Equal(t, "In Stock (2)", full.InventoryStatus)
		assert.False(t, full.Details.Degraded)
		require.NotNil(t, full.MainImage)
		assert.Equal(t, "b.png", full.MainImage.Src)
	})

	t.Run("상세와 재고가 각각 대체 값으로 처리", func(t *testing.T) {
		t.Parallel()

		up := &mockUpstream{}
		up.On("GetProduct", mock.Anything, "1").Return(tee(), nil)
		up.On("GetInventoryAvailable", mock.Anything, "inv-1").Return(0, errUpstream)
		up.On("GetProductDetails", mock.Anything, "1").Return(Details{}, errUpstream)

		full, err := NewAggregator(up, 0).Assemble(context.Background(), "1")
		require.NoError(t, err)

		assert.Equal(t, StockUnavailable, full.InventoryStatus)
		assert.True(t, full.Details.Degraded)
		assert.Nil(t, full.MainImage)
	})

	t.Run("Light 실패는 전파", func(t *testing.T) {
		t.Parallel()

		up := &mockUpstream{}
		up.On("GetProduct", mock.Anything, "1").Return(Product{}, errUpstream)
		up.On("GetProductDetails", mock.Anything, "1").Return(Details{}, nil).Maybe()

		_, err := NewAggregator(up, 0).Assemble(context.Background(), "1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errUpstream))
	})
}
