package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// responsiveImageStyle 상품 설명 안의 이미지가 화면 폭을 넘지 않도록 하는 인라인 스타일
const responsiveImageStyle = "max-width:100%;height:auto;display:block;margin:10px auto"

// Sanitize 상품 설명 HTML을 화면에 표시할 수 있도록 정리합니다.
//
//   - script, style 요소를 제거합니다.
//   - on으로 시작하는 이벤트 속성과 javascript: 링크를 제거합니다.
//   - 모든 img에 loading="lazy"와 반응형 스타일을 지정합니다.
//
// 해석할 수 없는 입력이면 빈 문자열을 반환합니다.
func Sanitize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	doc.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		return n.DataAtom == atom.Script || n.DataAtom == atom.Style
	}).Remove()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		stripUnsafeAttrs(s.Get(0))
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("loading", "lazy")
		s.SetAttr("style", responsiveImageStyle)
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(out)
}

func stripUnsafeAttrs(n *html.Node) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// MainImage 옵션에 연결된 이미지를 찾습니다. 연결된 이미지가 없으면 첫 번째 이미지, 이미지가 없으면 nil을 반환합니다.
func MainImage(images []Image, variantID string) *Image {
	if len(images) == 0 {
		return nil
	}

	if variantID != "" {
		for i := range images {
			for _, id := range images[i].VariantIDs {
				if id == variantID {
					return &images[i]
				}
			}
		}
	}

	return &images[0]
}
