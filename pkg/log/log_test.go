package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"cart_key": "abc"}
	entry := WithComponentAndFields("cart.store", fields)

	assert.Equal(t, "cart.store", entry.Data["component"])
	assert.Equal(t, "abc", entry.Data["cart_key"])
	assert.NotContains(t, fields, "component", "원본 필드 맵은 변경되지 않아야 합니다")
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "abc", want: "***"},
		{in: "shpat_12", want: "shpa***"},
		{in: "shpat_0123456789abcdef", want: "shpa***cdef"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskSensitiveData(tt.in))
	}
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("storefront")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	dev := NewDevelopmentOptions("storefront")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.NoError(t, dev.Validate())
}
