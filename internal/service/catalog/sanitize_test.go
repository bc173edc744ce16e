package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:        "script 제거",
			input:       `<p>hello</p><script>alert(1)</script>`,
			contains:    []string{"<p>hello</p>"},
			notContains: []string{"<script", "alert"},
		},
		{
			name:        "style 제거",
			input:       `<style>p{color:red}</style><p>x</p>`,
			contains:    []string{"<p>x</p>"},
			notContains: []string{"<style", "color:red"},
		},
		{
			name:        "이미지 지연 로딩과 반응형 스타일",
			input:       `<img src="a.png">`,
			contains:    []string{`loading="lazy"`, responsiveImageStyle, `src="a.png"`},
			notContains: nil,
		},
		{
			name:        "이벤트 속성 제거",
			input:       `<img src="a.png" onerror="steal()"><a href="javascript:x()" onclick="y()">l</a>`,
			contains:    []string{`src="a.png"`, ">l</a>"},
			notContains: []string{"onerror", "onclick", "javascript:"},
		},
		{
			name:        "중첩된 script",
			input:       `<div><section><script src="x.js"></script><b>ok</b></section></div>`,
			contains:    []string{"<b>ok</b>"},
			notContains: []string{"<script"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Sanitize(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   "))
}

func TestSanitize_EveryImageIsLazy(t *testing.T) {
	t.Parallel()

	got := Sanitize(`<img src="1"><p><img src="2" loading="eager"></p><img src="3">`)
	assert.Equal(t, 3, strings.Count(got, `loading="lazy"`))
	assert.NotContains(t, got, "eager")
}

func TestMainImage(t *testing.T) {
	t.Parallel()

	images := []Image{
		{ID: "1", Src: "first.png", VariantIDs: []string{}},
		{ID: "2", Src: "red.png", VariantIDs: []string{"v-red"}},
	}

	t.Run("옵션에 연결된 이미지", func(t *testing.T) {
		t.Parallel()
		img := MainImage(images, "v-red")
		require.NotNil(t, img)
		assert.Equal(t, "red.png", img.Src)
	})

	t.Run("연결된 이미지 없음", func(t *testing.T) {
		t.Parallel()
		img := MainImage(images, "v-blue")
		require.NotNil(t, img)
		assert.Equal(t, "first.png", img.Src)
	})

	t.Run("이미지 없음", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, MainImage(nil, "v-red"))
	})
}
