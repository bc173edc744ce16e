package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로그 파일(Main, Critical, Verbose)의 리소스 해제를 통합 관리합니다.
// router를 먼저 비활성화하여 닫힌 파일에 쓰기를 시도하지 않도록 하며, 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer
	router  *router

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.router != nil {
		_ = c.router.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
