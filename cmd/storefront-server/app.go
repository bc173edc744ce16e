package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	v1handler "github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/checkout"
	"github.com/darkkaiser/storefront-server/internal/service/fetcher"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	"github.com/darkkaiser/storefront-server/internal/service/payment"
	"github.com/darkkaiser/storefront-server/internal/service/scheduler"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/redis/go-redis/v9"
)

// maxRetryDelay 업스트림 재시도 간격의 상한
const maxRetryDelay = 10 * time.Second

// application 서버를 구성하는 서비스들의 묶음
type application struct {
	emitter  notification.Emitter
	telegram *notification.TelegramEmitter

	redisClient *redis.Client

	carts      *cart.LocalStore
	redirector *checkout.TimerRedirector
	scheduler  *scheduler.Scheduler
	api        *api.Service
}

// newApplication 설정에 따라 모든 서비스를 생성하고 연결합니다. 서비스는 아직 시작하지 않습니다.
func newApplication(appConfig *config.AppConfig, buildInfo version.Info) (*application, error) {
	a := &application{}

	// 알림: 로그는 항상 남기고, 텔레그램이 설정되어 있으면 경고 이상을 운영자에게 전달한다.
	emitters := notification.Fanout{notification.LogEmitter{}}
	if appConfig.Notifier.Telegram.Enabled() {
		tg, err := notification.NewTelegramEmitter(appConfig.Notifier.Telegram.BotToken, appConfig.Notifier.Telegram.ChatID, appConfig.Debug)
		if err != nil {
			return nil, err
		}
		a.telegram = tg
		emitters = append(emitters, tg)
	}
	a.emitter = emitters

	// 카탈로그
	var (
		cache      catalog.Cache
		cacheCheck func(ctx context.Context) error
		cacheSweep scheduler.Sweeper
	)
	switch appConfig.Cache.Backend {
	case config.CacheBackendRedis:
		a.redisClient = redis.NewClient(&redis.Options{
			Addr: appConfig.Cache.RedisAddr,
			DB:   appConfig.Cache.RedisDB,
		})
		rc := catalog.NewRedisCache(a.redisClient)
		cache = rc
		cacheCheck = rc.Ping
	default:
		mc := catalog.NewMemoryCache()
		cache = mc
		cacheSweep = mc
	}

	shopify := catalog.NewShopifyClient(fetcher.New(fetcher.Config{
		Timeout:       appConfig.Shopify.RequestTimeout,
		MaxRetries:    appConfig.HTTPRetry.MaxRetries,
		MinRetryDelay: appConfig.HTTPRetry.RetryDelay,
		MaxRetryDelay: maxRetryDelay,
		MaxBytes:      appConfig.Shopify.MaxResponseBytes,
	}), cache, catalog.ShopifyConfig{
		BaseURL:            appConfig.Shopify.BaseURL,
		APIVersion:         appConfig.Shopify.APIVersion,
		AccessToken:        appConfig.Shopify.AccessToken,
		RevalidateAfter:    appConfig.Shopify.RevalidateAfter,
		BreakerMaxFailures: appConfig.Shopify.Breaker.MaxFailures,
		BreakerOpenTimeout: appConfig.Shopify.Breaker.OpenTimeout,
		FetchTimeout:       shopifyFetchTimeout(appConfig),
	})
	aggregator := catalog.NewAggregator(shopify, appConfig.Shopify.InventoryConcurrency)

	// 장바구니
	var backend cart.Backend
	switch appConfig.Cart.Storage {
	case config.CartStorageMemory:
		backend = cart.NewMemoryBackend()
	default:
		fb, err := cart.NewFileBackend(appConfig.Cart.DataDir)
		if err != nil {
			a.close()
			return nil, err
		}
		backend = fb
	}

	var storeOpts []cart.Option
	if appConfig.Cart.EchoURL != "" {
		// 미러링은 부가 기능이므로 재시도하지 않는다.
		echoFetcher := fetcher.New(fetcher.Config{Timeout: appConfig.Cart.EchoTimeout})
		storeOpts = append(storeOpts, cart.WithMirror(cart.NewEchoClient(echoFetcher, appConfig.Cart.EchoURL), appConfig.Cart.EchoTimeout))
	}
	a.carts = cart.NewLocalStore(backend, storeOpts...)

	// 결제
	payments := payment.NewClient(fetcher.New(fetcher.Config{
		Timeout:       appConfig.Shopify.RequestTimeout,
		MaxRetries:    appConfig.HTTPRetry.MaxRetries,
		MinRetryDelay: appConfig.HTTPRetry.RetryDelay,
		MaxRetryDelay: maxRetryDelay,
	}), payment.Config{
		BaseURL:   appConfig.PayPal.BaseURL,
		SDKURL:    appConfig.PayPal.SDKURL,
		ClientID:  appConfig.PayPal.ClientID,
		Secret:    appConfig.PayPal.Secret,
		Currency:  appConfig.PayPal.Currency,
		ReturnURL: appConfig.PayPal.ReturnURL,
		CancelURL: appConfig.PayPal.CancelURL,
	})

	// 체크아웃
	a.redirector = checkout.NewTimerRedirector(a.emitter)
	sessions := checkout.NewService(checkout.Config{
		Store:      a.carts,
		NewWidget:  func() checkout.PaymentWidget { return payments.NewWidget() },
		Emitter:    a.emitter,
		Redirector: a.redirector,
		ConfirmPayment: func(ctx context.Context, amount float64) error {
			_, err := payments.CreatePayment(ctx, amount, appConfig.PayPal.Currency)
			return err
		},
		SessionTTL: appConfig.Checkout.SessionTTL,
		Options: checkout.Options{
			RedirectDelay:        appConfig.Checkout.RedirectDelay,
			EmptyCartRedirect:    appConfig.Checkout.EmptyCartRedirect,
			ConfirmationRedirect: appConfig.Checkout.ConfirmationRedirect,
			NotificationDuration: appConfig.Notifier.Duration,
		},
	})

	// 정리 작업
	a.scheduler = scheduler.NewService(
		scheduler.Job{Name: "catalog-cache", Spec: appConfig.Cache.SweepSpec, Sweeper: cacheSweep},
		scheduler.Job{Name: "checkout-sessions", Spec: appConfig.Cache.SweepSpec, Sweeper: sessions},
	)

	// API
	checks := []system.DependencyCheck{
		{
			Name: constants.DependencyShopify,
			Check: func(context.Context) error {
				if state := shopify.BreakerState(); state == "open" {
					return apperrors.Newf(apperrors.Unavailable, "회로 차단기가 열려 있습니다 (state: %s)", state)
				}
				return nil
			},
		},
		{
			Name: constants.DependencyPayPal,
			Check: func(context.Context) error {
				if !appConfig.PayPal.HasCredentials() {
					return apperrors.New(apperrors.System, "PayPal 자격 증명이 설정되지 않았습니다")
				}
				return nil
			},
		},
	}
	if cacheCheck != nil {
		checks = append(checks, system.DependencyCheck{Name: constants.DependencyCatalogCache, Check: cacheCheck})
	}

	a.api = api.NewService(
		appConfig,
		system.NewHandler(buildInfo, checks...),
		v1handler.New(v1handler.Dependencies{
			Catalog:         aggregator,
			Carts:           a.carts,
			Checkout:        sessions,
			Payments:        payments,
			DefaultCurrency: appConfig.PayPal.Currency,
		}),
		a.emitter,
	)

	return a, nil
}

// start 서비스들을 시작합니다. 하나라도 실패하면 에러를 반환하며, 이미 시작된 서비스는 ctx 취소로 정리됩니다.
func (a *application) start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	if a.telegram != nil {
		if err := a.telegram.Start(serviceStopCtx, serviceStopWG); err != nil {
			return err
		}
	}

	serviceStopWG.Add(1)
	if err := a.scheduler.Start(serviceStopCtx, serviceStopWG); err != nil {
		return err
	}

	serviceStopWG.Add(1)
	if err := a.api.Start(serviceStopCtx, serviceStopWG); err != nil {
		return err
	}

	return nil
}

// close 서비스 종료 후 남은 자원을 정리합니다.
func (a *application) close() {
	if a.redirector != nil {
		a.redirector.Stop()
	}
	if a.carts != nil {
		a.carts.Wait()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn("Redis 연결 종료 실패")
		}
	}
}

// shopifyFetchTimeout 모든 재시도 시도와 그 사이의 최대 대기 시간을 합한 조회 제한 시간
func shopifyFetchTimeout(appConfig *config.AppConfig) time.Duration {
	retries := time.Duration(appConfig.HTTPRetry.MaxRetries)
	return appConfig.Shopify.RequestTimeout*(retries+1) + maxRetryDelay*retries
}
