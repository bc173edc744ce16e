// Package scheduler 만료된 캐시 항목과 체크아웃 세션을 주기적으로 정리하는 Cron 서비스를 제공합니다.
package scheduler

import (
	"context"
	"sync"

	"github.com/darkkaiser/storefront-server/pkg/cronx"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// DefaultSweepSpec 매 분 0초에 정리 작업을 실행합니다.
const DefaultSweepSpec = "0 */1 * * * *"

// Sweeper 만료된 항목을 정리하고 정리한 개수를 반환합니다.
type Sweeper interface {
	Sweep() int
}

// Job 주기적으로 실행할 정리 작업
type Job struct {
	Name    string
	Spec    string
	Sweeper Sweeper
}

// Scheduler 등록된 정리 작업들을 Cron 스케줄에 맞춰 실행하는 서비스입니다.
type Scheduler struct {
	jobs []Job

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스를 생성합니다. Sweeper가 nil인 작업은 무시합니다.
func NewService(jobs ...Job) *Scheduler {
	filtered := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Sweeper == nil {
			continue
		}
		if j.Spec == "" {
			j.Spec = DefaultSweepSpec
		}
		filtered = append(filtered, j)
	}

	return &Scheduler{jobs: filtered}
}

// Start 작업들을 Cron 엔진에 등록하고 스케줄러를 시작합니다.
//
// 호출자는 serviceStopWG.Add(1)을 먼저 호출해야 하며, serviceStopCtx가 취소되면 스케줄러를 중지하고 Done을 호출합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}
	if len(s.jobs) == 0 {
		serviceStopWG.Done()
		return ErrNoJobs
	}

	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	for _, j := range s.jobs {
		job := j
		if _, err := c.AddFunc(job.Spec, func() { runJob(job) }); err != nil {
			serviceStopWG.Done()
			return NewErrInvalidCronSpec(job.Name, job.Spec, err)
		}
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_jobs": len(s.cron.Entries()),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지하고, 실행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료")
}

// Running 스케줄러가 실행 중인지 확인합니다.
func (s *Scheduler) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

func runJob(j Job) {
	removed := j.Sweeper.Sweep()
	if removed == 0 {
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"job":     j.Name,
		"removed": removed,
	}).Debug("정리 작업 완료")
}
