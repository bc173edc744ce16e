package maputil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0},
		{"빈 문자열", "", 0},
		{"숫자 문자열", "12.50", 12.5},
		{"공백 포함", "  7 ", 7},
		{"접미사 포함", "19.99 USD", 19.99},
		{"숫자 아님", "abc", 0},
		{"지수 표기", "1e2", 100},
		{"정수", 3, 3},
		{"실수", 2.25, 2.25},
		{"NaN", math.NaN(), 0},
		{"무한대", math.Inf(1), 0},
		{"지원하지 않는 타입", []int{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToFloat(tt.input))
		})
	}
}

func TestToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		def   int
		want  int
	}{
		{"nil은 기본값", nil, 1, 1},
		{"0은 기본값", 0, 1, 1},
		{"문자열 0은 기본값", "0", 1, 1},
		{"숫자 문자열", "4", 1, 4},
		{"실수 문자열은 정수부만", "3.7", 1, 3},
		{"숫자 아님", "x", 1, 1},
		{"실수는 버림", 2.9, 1, 2},
		{"정수", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToInt(tt.input, tt.def))
		})
	}
}

type line struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Color    string  `json:"color"`
}

func TestDecode_WeakTyping(t *testing.T) {
	t.Parallel()

	got, err := Decode[line](map[string]any{
		"id":       42,
		"quantity": "2",
		"price":    "9.99",
		"extra":    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 9.99, got.Price)
}

func TestDecode_UnparsableNumberBecomesZero(t *testing.T) {
	t.Parallel()

	got, err := Decode[line](map[string]any{"price": "free", "quantity": ""})

	require.NoError(t, err)
	assert.Zero(t, got.Price)
	assert.Zero(t, got.Quantity)
}

func TestDecode_ErrorUnused(t *testing.T) {
	t.Parallel()

	_, err := Decode[line](map[string]any{"unknown": 1}, WithErrorUnused(true))
	assert.Error(t, err)
}

func TestDecodeTo_NilOutput(t *testing.T) {
	t.Parallel()

	assert.Error(t, DecodeTo[line](map[string]any{}, nil))
}

func TestDecodeTo_KeepsExistingValues(t *testing.T) {
	t.Parallel()

	out := line{ID: "keep", Color: "red"}
	require.NoError(t, DecodeTo(map[string]any{"quantity": 3}, &out))

	assert.Equal(t, "keep", out.ID)
	assert.Equal(t, "red", out.Color)
	assert.Equal(t, 3, out.Quantity)
}
