package log

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// resetForTest 테스트 간 독립성을 위해 패키지 전역 상태와 logrus 전역 설정을 초기화합니다.
func resetForTest() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}
