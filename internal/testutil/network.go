package testutil

import (
	"testing"
	"time"
)

// WaitReady ready 채널이 닫힐 때까지 최대 timeout 동안 기다립니다. 시간이 초과되면 테스트를 실패시킵니다.
func WaitReady(t testing.TB, ready <-chan struct{}, timeout time.Duration) {
	t.Helper()

	select {
	case <-ready:
	case <-time.After(timeout):
		t.Fatalf("서버가 %v 안에 준비되지 않았습니다", timeout)
	}
}
