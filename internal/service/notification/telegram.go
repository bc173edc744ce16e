package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/storefront-server/internal/pkg/mark"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	telegramComponent = "notification.telegram"

	// messageMaxLength 텔레그램 메시지 하나의 최대 길이(4096)에 여유를 둔 값
	messageMaxLength = 3900

	telegramQueueSize     = 64
	telegramClientTimeout = 30 * time.Second

	// 텔레그램 API의 채팅방당 전송 제한(초당 1건)
	telegramRateLimit = 1
	telegramRateBurst = 5
)

// botClient 텔레그램 봇 API 중 메시지 전송에 필요한 부분
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramEmitter 경고(warning) 이상의 알림을 운영자 텔레그램 채팅방으로 전달합니다.
//
// Emit은 대기열에 넣기만 하고 즉시 반환하며, 실제 전송은 Start로 시작한 워커 고루틴이 속도 제한에 맞춰 수행합니다.
type TelegramEmitter struct {
	bot     botClient
	chatID  int64
	min     Severity
	limiter *rate.Limiter

	queue chan Notification

	mu      sync.RWMutex
	running bool
}

var _ Emitter = (*TelegramEmitter)(nil)

// NewTelegramEmitter 봇 토큰으로 텔레그램 API 클라이언트를 초기화하고 새로운 TelegramEmitter를 생성합니다.
func NewTelegramEmitter(botToken string, chatID int64, debug bool) (*TelegramEmitter, error) {
	client := &http.Client{Timeout: telegramClientTimeout}

	bot, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, newErrBotInitFailed(err)
	}
	bot.Debug = debug

	return newTelegramEmitterWithBot(bot, chatID), nil
}

func newTelegramEmitterWithBot(bot botClient, chatID int64) *TelegramEmitter {
	return &TelegramEmitter{
		bot:     bot,
		chatID:  chatID,
		min:     SeverityWarning,
		limiter: rate.NewLimiter(rate.Limit(telegramRateLimit), telegramRateBurst),
		queue:   make(chan Notification, telegramQueueSize),
	}
}

// Emit 경고 이상의 알림을 전송 대기열에 넣습니다. 그보다 낮은 심각도의 알림은 무시합니다.
func (e *TelegramEmitter) Emit(_ context.Context, n Notification) error {
	if !n.Severity.AtLeast(e.min) {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.running {
		return ErrNotRunning
	}

	select {
	case e.queue <- n:
		return nil
	default:
		applog.WithComponentAndFields(telegramComponent, applog.Fields{
			"severity": n.Severity,
		}).Warn("텔레그램 알림 대기열이 가득 차서 알림을 버립니다")
		return ErrQueueFull
	}
}

// Start 전송 워커를 시작합니다. ctx가 취소되면 대기열에 남은 알림을 버리고 종료합니다.
func (e *TelegramEmitter) Start(ctx context.Context, wg *sync.WaitGroup) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return nil
	}
	e.running = true

	wg.Add(1)
	go e.run(ctx, wg)

	applog.WithComponent(telegramComponent).Info("텔레그램 알림 워커 시작됨")

	return nil
}

func (e *TelegramEmitter) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()

		applog.WithComponent(telegramComponent).Info("텔레그램 알림 워커 종료됨")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-e.queue:
			e.send(ctx, formatMessage(n))
		}
	}
}

func (e *TelegramEmitter) send(ctx context.Context, message string) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(telegramComponent, applog.Fields{
				"panic": r,
			}).Error("텔레그램 알림 전송 중 패닉 발생")
		}
	}()

	for _, chunk := range splitMessage(message, messageMaxLength) {
		if err := e.limiter.Wait(ctx); err != nil {
			return
		}

		if _, err := e.bot.Send(tgbotapi.NewMessage(e.chatID, chunk)); err != nil {
			applog.WithComponentAndFields(telegramComponent, applog.Fields{
				"chat_id": e.chatID,
				"error":   err,
			}).Error("텔레그램 알림 전송 실패")
			return
		}
	}
}

var severityMarks = map[Severity]mark.Mark{
	SeverityInfo:    mark.Info,
	SeveritySuccess: mark.Success,
	SeverityWarning: mark.Warning,
	SeverityDanger:  mark.Alert,
}

func formatMessage(n Notification) string {
	return fmt.Sprintf("%s[%s] %s", severityMarks[n.Severity].WithSpace(), strings.ToUpper(string(n.Severity)), n.Message)
}

// splitMessage 메시지를 limit 바이트 이하의 조각으로 나눕니다.
// 가능하면 줄 단위로 나누고, 한 줄이 limit를 넘으면 UTF-8 문자 경계에서 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed <= limit {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			continue
		}

		flush()

		for len(line) > limit {
			var chunk string
			chunk, line = safeSplit(line, limit)
			chunks = append(chunks, chunk)
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}

// safeSplit 멀티바이트 문자가 깨지지 않도록 limit 이하의 룬 경계에서 문자열을 나눕니다.
func safeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	i := limit
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i == 0 {
		return s[:limit], s[limit:]
	}

	return s[:i], s[i:]
}
