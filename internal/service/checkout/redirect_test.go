package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingRedirector(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewRecordingRedirector()
	r.now = func() time.Time { return now }

	rd := r.Schedule(context.Background(), "s", "/products", 2*time.Second)
	assert.Equal(t, "/products", rd.Target)
	assert.Equal(t, now.Add(2*time.Second), rd.DueAt)

	got, ok := r.Scheduled("s")
	require.True(t, ok)
	assert.Equal(t, rd, got)
}

func TestTimerRedirector_Fires(t *testing.T) {
	t.Parallel()

	rec := notification.NewRecorder()
	r := NewTimerRedirector(rec)

	r.Schedule(context.Background(), "s", "/order-confirmation", 10*time.Millisecond)

	require.Eventually(t, func() bool { return len(rec.All()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Redirecting to /order-confirmation", rec.All()[0].Message)
	assert.Zero(t, r.Pending())
}

func TestTimerRedirector_StopCancelsPending(t *testing.T) {
	t.Parallel()

	rec := notification.NewRecorder()
	r := NewTimerRedirector(rec)

	r.Schedule(context.Background(), "s", "/x", time.Hour)
	assert.Equal(t, 1, r.Pending())

	r.Stop()
	assert.Zero(t, r.Pending())

	r.Schedule(context.Background(), "t", "/y", time.Millisecond)
	assert.Zero(t, r.Pending(), "중지 후의 예약은 무시되어야 합니다")
}
