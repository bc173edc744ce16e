package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// router 로그 레벨에 따라 Entry를 Critical, Main, Verbose, Console 채널로 분배하는 logrus Hook입니다.
//
//   - ERROR 이상: Critical + Main
//   - INFO, WARN: Main
//   - DEBUG 이하: Verbose (Main에는 기록하지 않음)
//   - Console: 레벨과 무관하게 모든 로그
type router struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

// Levels 모든 로그 레벨을 수신합니다.
func (r *router) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 포맷팅한 뒤 레벨별 라우팅 정책에 따라 기록합니다.
// 일부 채널의 쓰기에 실패하더라도 나머지 채널에는 기록을 시도하고, 첫 번째 에러를 반환합니다.
func (r *router) Fire(entry *Entry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}

	msg, err := r.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 로깅 가용성에 영향을 주지 않도록 전파하지 않습니다.
	if r.consoleWriter != nil {
		if _, err := r.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", channel, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(r.criticalWriter, "Critical")
	}

	if entry.Level >= DebugLevel {
		write(r.verboseWriter, "Verbose")
		return firstErr
	}

	write(r.mainWriter, "Main")

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 무시하도록 router를 비활성화합니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (r *router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}
