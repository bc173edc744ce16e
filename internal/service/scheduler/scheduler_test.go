package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingSweeper struct {
	calls atomic.Int32
	panic bool
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	if s.panic {
		panic("sweep failed")
	}
	return 1
}

func TestScheduler_RunsJobsAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	sw := &countingSweeper{}
	s := NewService(Job{Name: "cache", Spec: "* * * * * *", Sweeper: sw})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	assert.True(t, s.Running())

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()
	assert.False(t, s.Running())
}

func TestScheduler_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	bad := &countingSweeper{panic: true}
	good := &countingSweeper{}
	s := NewService(
		Job{Name: "bad", Spec: "* * * * * *", Sweeper: bad},
		Job{Name: "good", Spec: "* * * * * *", Sweeper: good},
	)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	assert.Eventually(t, func() bool { return bad.calls.Load() >= 2 && good.calls.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)

	cancel()
	wg.Wait()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	t.Parallel()

	s := NewService(Job{Name: "x", Spec: "not a cron", Sweeper: &countingSweeper{}})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := s.Start(context.Background(), wg)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	wg.Wait()
	assert.False(t, s.Running())
}

func TestScheduler_NoJobs(t *testing.T) {
	t.Parallel()

	s := NewService(Job{Name: "nil sweeper"})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	assert.ErrorIs(t, s.Start(context.Background(), wg), ErrNoJobs)
	wg.Wait()
}

func TestScheduler_DuplicateStart(t *testing.T) {
	t.Parallel()

	s := NewService(Job{Name: "cache", Sweeper: &countingSweeper{}})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()
	wg.Wait()
}

func TestNewService_DefaultSpec(t *testing.T) {
	t.Parallel()

	s := NewService(Job{Name: "a", Sweeper: &countingSweeper{}})
	require.Len(t, s.jobs, 1)
	assert.Equal(t, DefaultSweepSpec, s.jobs[0].Spec)
}
