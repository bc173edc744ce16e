package log

import "github.com/sirupsen/logrus"

// discardFormatter 표준 로거의 출력 단계에서 포맷팅을 생략합니다. 실제 출력은 router 훅이 채널별로 포맷팅합니다.
type discardFormatter struct{}

func (discardFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}
