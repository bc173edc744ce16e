package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// setupOnce 프로세스 생명주기 동안 Setup()이 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 결과를 보관하여 Setup 재호출 시 동일한 결과를 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 옵션에 따라 파일/콘솔 출력을 구성합니다.
//
// main 함수 도입부에서 호출하고, 반환된 Closer는 defer로 반드시 해제해야 합니다.
// 두 번째 이후의 호출은 최초 호출의 결과를 그대로 반환합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 router에서 수행하므로 logrus 기본 출력 경로의 포맷팅 비용을 제거합니다.
	logrus.SetFormatter(discardFormatter{})
	logrus.SetOutput(io.Discard)

	logDir := opts.Dir
	if logDir == "" {
		logDir = defaultDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	rotation := rotationPolicy{
		dir:        logDir,
		name:       opts.Name,
		maxSizeMB:  orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		maxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
		maxAge:     opts.MaxAge,
	}

	r := &router{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}
	var closers []io.Closer

	mainLogger := rotation.newLogger("")
	r.mainWriter = mainLogger
	closers = append(closers, mainLogger)

	if opts.EnableCriticalLog {
		criticalLogger := rotation.newLogger("critical")
		r.criticalWriter = criticalLogger
		closers = append(closers, criticalLogger)
	}
	if opts.EnableVerboseLog {
		verboseLogger := rotation.newLogger("verbose")
		r.verboseWriter = verboseLogger
		closers = append(closers, verboseLogger)
	}
	if opts.EnableConsoleLog {
		r.consoleWriter = os.Stdout
	}

	logrus.AddHook(r)

	c := &closer{
		closers: closers,
		router:  r,
	}

	// Fatal 로그로 프로세스가 종료되기 직전에 버퍼에 남은 로그를 디스크에 기록합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// rotationPolicy lumberjack 기반 로그 파일의 로테이션 정책입니다.
type rotationPolicy struct {
	dir        string
	name       string
	maxSizeMB  int
	maxBackups int
	maxAge     int
}

// newLogger "<name>[.<channel>].log" 형식의 로테이션 로거를 생성합니다.
// lumberjack은 첫 쓰기 시점에 파일을 열기 때문에 생성 자체는 실패하지 않습니다.
func (p rotationPolicy) newLogger(channel string) *lumberjack.Logger {
	filename := fmt.Sprintf("%s.%s", p.name, fileExt)
	if channel != "" {
		filename = fmt.Sprintf("%s.%s.%s", p.name, channel, fileExt)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(p.dir, filename),
		MaxSize:    p.maxSizeMB,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   false,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
