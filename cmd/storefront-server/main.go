package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// component 메인 프로세스의 로깅용 컴포넌트 이름
const component = "main"

const banner = `
  ____  _                  __                 _
 / ___|| |_ ___  _ __ ___ / _|_ __ ___  _ __ | |_
 \___ \| __/ _ \| '__/ _ \ |_| '__/ _ \| '_ \| __|
  ___) | || (_) | | |  __/  _| | | (_) | | | | |_
 |____/ \__\___/|_|  \___|_| |_|  \___/|_| |_|\__|
                                                  %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	if code := run(appConfig, buildInfo); code != 0 {
		appLogCloser.Close()
		os.Exit(code)
	}
}

// run 서비스를 시작하고 종료 신호를 받을 때까지 대기합니다. 프로세스 종료 코드를 반환합니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) int {
	app, err := newApplication(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 생성 실패")
		return 1
	}
	defer app.close()

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	if err := app.start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel() // 이미 시작된 서비스들도 종료
		serviceStopWG.Wait()

		return 1
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponentAndFields(component, applog.Fields{
		"port":     appConfig.API.ListenPort,
		"telegram": appConfig.Notifier.Telegram.Enabled(),
		"cache":    appConfig.Cache.Backend,
		"cart":     appConfig.Cart.Storage,
	}).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	return 0
}
