package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"CSS 키워드", "red", "red"},
		{"대문자", "Navy", "navy"},
		{"첫 단어만 사용", "Black / XL", "black"},
		{"동의어 kaki", "Kaki", "khaki"},
		{"동의어 grey", "grey", "gray"},
		{"동의어 darkgrey", "DarkGrey", "darkgray"},
		{"hex 3자리", "#FFF", "#fff"},
		{"hex 6자리", "#a1b2c3", "#a1b2c3"},
		{"잘못된 hex", "#12345", Placeholder},
		{"알 수 없는 단어", "unknown", Placeholder},
		{"빈 문자열", "", Placeholder},
		{"공백만", "   ", Placeholder},
		{"사이즈만 있는 제목", "XL", Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.token))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"red", "grey", "kaki", "Burgundy", "#ABC", "nope", "", "Light Blue"}
	for name := range namedColors {
		inputs = append(inputs, name)
	}
	for name := range synonyms {
		inputs = append(inputs, name)
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "입력: %q", in)
	}
}

func TestFromVariantTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "white", FromVariantTitle("White / S"))
	assert.Equal(t, Placeholder, FromVariantTitle("Default Title"))
}

func TestContrastText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000", ContrastText("white"))
	assert.Equal(t, "#000", ContrastText("Yellow"))
	assert.Equal(t, "#000", ContrastText("unknown"), "중립 색상 위에는 검정 글자")
	assert.Equal(t, "#fff", ContrastText("navy"))
	assert.Equal(t, "#fff", ContrastText("black"))
}
