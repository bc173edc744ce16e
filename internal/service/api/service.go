// Package api 스토어프론트 HTTP API 서버의 구성과 생명주기를 관리합니다.
//
// @title Storefront Server API
// @version 1.0
// @description Shopify 상품 조회, 장바구니, 체크아웃, PayPal 결제를 중계하는 스토어프론트 백엔드 API입니다.
// @BasePath /
package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	_ "github.com/darkkaiser/storefront-server/docs"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/storefront-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 스토어프론트 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 HTTP(S) 서버를 실행하고, 전달된 context가 취소되면
// Graceful Shutdown(5초 타임아웃)을 수행합니다. 서버가 예기치 않게 종료되면 운영자 알림을 보냅니다.
type Service struct {
	appConfig *config.AppConfig

	systemHandler *system.Handler
	v1Handler     *v1handler.Handler

	emitter notification.Emitter

	running   bool
	runningMu sync.Mutex

	// addr 실제로 바인딩된 주소 (ListenPort가 0이면 임의 포트)
	addr   string
	addrMu sync.RWMutex

	ready     chan struct{}
	readyOnce sync.Once
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, systemHandler *system.Handler, v1Handler *v1handler.Handler, emitter notification.Emitter) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if systemHandler == nil || v1Handler == nil {
		panic(constants.PanicMsgRoutesRequired)
	}
	if emitter == nil {
		panic(constants.PanicMsgEmitterRequired)
	}

	return &Service{
		appConfig: appConfig,

		systemHandler: systemHandler,
		v1Handler:     v1Handler,

		emitter: emitter,

		ready: make(chan struct{}),
	}
}

// Start API 서비스를 시작합니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 하며, 서비스가 완전히 종료되면 Done이 호출됩니다.
// 이미 실행 중이면 Done을 호출하고 ErrServiceAlreadyRunning을 반환합니다.
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return ErrServiceAlreadyRunning
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// Ready 서버가 포트 바인딩을 마치면 닫히는 채널을 반환합니다.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Addr 서버가 바인딩된 주소를 반환합니다. 바인딩 전에는 빈 문자열입니다.
func (s *Service) Addr() string {
	s.addrMu.RLock()
	defer s.addrMu.RUnlock()
	return s.addr
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 미들웨어 체인과 전역/v1 라우트가 등록된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   s.appConfig.API.TLSServer,
		AllowOrigins: s.appConfig.API.CORS.AllowOrigins,
	})

	RegisterRoutes(e, s.systemHandler)
	v1.RegisterRoutes(e, s.v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다. 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)
	defer func() {
		if r := recover(); r != nil {
			s.handleServerError(fmt.Errorf("http 서버 panic: %v", r))
		}
	}()

	address := net.JoinHostPort("", strconv.Itoa(s.appConfig.API.ListenPort))
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": address,
		"tls":     s.appConfig.API.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		s.handleServerError(err)
		return
	}

	s.addrMu.Lock()
	s.addr = listener.Addr().String()
	s.addrMu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })

	if s.appConfig.API.TLSServer {
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(s.appConfig.API.TLSCertFile, s.appConfig.API.TLSKeyFile)
		if err != nil {
			_ = listener.Close()
			s.handleServerError(err)
			return
		}

		srv := e.TLSServer
		srv.ReadTimeout = e.Server.ReadTimeout
		srv.ReadHeaderTimeout = e.Server.ReadHeaderTimeout
		srv.WriteTimeout = e.Server.WriteTimeout
		srv.IdleTimeout = e.Server.IdleTimeout
		srv.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		e.TLSListener = tls.NewListener(listener, srv.TLSConfig)
		err = e.StartServer(srv)
	} else {
		e.Listener = listener
		err = e.StartServer(e.Server)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 종료 원인을 처리합니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown 완료 로그
//   - 그 외: Error 로그 + 운영자 알림
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(message)

	_ = s.emitter.Emit(context.Background(), notification.New(fmt.Sprintf("%s\r\n\r\n%s", message, err), notification.SeverityDanger))
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료되었으므로 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
