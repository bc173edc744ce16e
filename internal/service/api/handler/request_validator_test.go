package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	VariantID string  `validate:"required" korean:"상품 옵션 ID"`
	Title     string  `validate:"required,max=5" korean:"상품명"`
	Quantity  int     `validate:"min=1" korean:"수량"`
	Amount    float64 `validate:"gt=0" korean:"결제 금액"`
	Currency  string  `validate:"omitempty,iso4217" korean:"통화"`
	Severity  string  `validate:"omitempty,oneof=info warning" korean:"심각도"`
	Image     string  `validate:"omitempty,url"`
}

func validSample() sampleRequest {
	return sampleRequest{VariantID: "v1", Title: "Tee", Quantity: 1, Amount: 10}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	got := make([]*validator.Validate, 20)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = getValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		assert.Same(t, got[0], v)
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*sampleRequest)
		want   string
	}{
		{"정상", func(*sampleRequest) {}, ""},
		{"필수 누락", func(r *sampleRequest) { r.VariantID = "" }, "상품 옵션 ID는 필수입니다"},
		{"문자열 최대 길이", func(r *sampleRequest) { r.Title = "Too long" }, "상품명는 최대 5자까지 입력 가능합니다"},
		{"숫자 최소값", func(r *sampleRequest) { r.Quantity = 0 }, "수량는 최소 1 이상이어야 합니다"},
		{"양수 금액", func(r *sampleRequest) { r.Amount = 0 }, "결제 금액는 0보다 커야 합니다"},
		{"통화 코드", func(r *sampleRequest) { r.Currency = "XYZ1" }, "통화는 ISO 4217 통화 코드여야 합니다"},
		{"열거값", func(r *sampleRequest) { r.Severity = "fatal" }, "심각도는 [info, warning] 중 하나여야 합니다"},
		{"URL", func(r *sampleRequest) { r.Image = "not a url" }, "Image는 올바른 URL 형식이어야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validSample()
			tt.mutate(&req)

			err := ValidateRequest(&req)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, FormatValidationError(err))
		})
	}
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatValidationError(nil))
	assert.Equal(t, "plain", FormatValidationError(errors.New("plain")))
}
