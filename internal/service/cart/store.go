// Package cart 클라이언트별 장바구니 저장소를 제공합니다.
//
// 장바구니의 원본은 클라이언트 키로 구분되는 Backend 슬롯이며, 변경될 때마다 전체 장바구니를
// 에코 엔드포인트로 복제(Mirror)합니다. 복제는 관찰용일 뿐 다시 읽히지 않으므로,
// 복제 대상과 Backend의 내용은 서로 다를 수 있습니다.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/color"
	"github.com/darkkaiser/storefront-server/pkg/concurrency"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/darkkaiser/storefront-server/pkg/maputil"
)

// component 장바구니 저장소 로깅용 컴포넌트 이름
const component = "cart.store"

const defaultMirrorTimeout = 5 * time.Second

// Store 클라이언트 키별 장바구니 저장소
type Store interface {
	// Add Line을 추가하거나, 같은 VariantID의 Line이 있으면 수량을 더합니다.
	Add(ctx context.Context, key string, in LineInput) (Cart, error)

	// Load 저장된 장바구니를 읽어 정규화합니다. 유효한 Line이 없으면 빈 Cart와 ErrCartEmpty를 반환합니다.
	Load(ctx context.Context, key string) (Cart, error)

	// Clear 장바구니를 조건 없이 삭제합니다.
	Clear(ctx context.Context, key string) error

	// SaveOrder 확정된 주문을 lastOrder 슬롯에 기록합니다.
	SaveOrder(ctx context.Context, key string, order any) error

	// LastOrder lastOrder 슬롯의 주문을 v로 읽어옵니다.
	LastOrder(ctx context.Context, key string, v any) error
}

// LocalStore Backend를 원본으로 사용하는 Store 구현체입니다.
//
// 같은 키에 대한 읽기-수정-쓰기는 KeyedMutex로 직렬화됩니다.
type LocalStore struct {
	backend Backend

	mirror        Mirror
	mirrorTimeout time.Duration

	locks *concurrency.KeyedMutex

	// mirrorWG 진행 중인 복제 고루틴
	mirrorWG sync.WaitGroup
}

var _ Store = (*LocalStore)(nil)

// Option LocalStore 설정 옵션
type Option func(*LocalStore)

// WithMirror 장바구니 변경 시 복제할 대상을 지정합니다. timeout이 0 이하이면 5초를 사용합니다.
func WithMirror(m Mirror, timeout time.Duration) Option {
	return func(s *LocalStore) {
		s.mirror = m
		if timeout > 0 {
			s.mirrorTimeout = timeout
		}
	}
}

// NewLocalStore 새로운 LocalStore를 생성합니다.
func NewLocalStore(backend Backend, opts ...Option) *LocalStore {
	s := &LocalStore{
		backend:       backend,
		mirrorTimeout: defaultMirrorTimeout,
		locks:         concurrency.NewKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalStore) Add(ctx context.Context, key string, in LineInput) (Cart, error) {
	if err := validateLineInput(in); err != nil {
		return Cart{}, err
	}

	var lines []Line
	err := s.locks.WithLock(key, func() error {
		stored, err := s.readLines(ctx, key)
		if err != nil {
			return err
		}

		lines = mergeLine(stored, in)

		data, err := json.Marshal(lines)
		if err != nil {
			return newErrEncodeFailed(err, SlotCart)
		}

		return s.backend.Set(ctx, key, SlotCart, data)
	})
	if err != nil {
		return Cart{}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"key":        key,
		"variant_id": in.VariantID,
		"quantity":   in.Quantity,
		"lines":      len(lines),
	}).Debug("장바구니 담기 완료")

	s.mirrorAsync(ctx, key, lines)

	return Cart{Lines: lines}, nil
}

func (s *LocalStore) Load(ctx context.Context, key string) (Cart, error) {
	var stored []Line
	err := s.locks.WithLock(key, func() error {
		var err error
		stored, err = s.readLines(ctx, key)
		return err
	})
	if err != nil {
		return Cart{}, err
	}

	lines := make([]Line, 0, len(stored))
	for _, l := range stored {
		if l.Price > 0 {
			lines = append(lines, l)
		}
	}

	c := Cart{Lines: lines}
	if c.IsEmpty() {
		return c, ErrCartEmpty
	}

	return c, nil
}

func (s *LocalStore) Clear(ctx context.Context, key string) error {
	return s.locks.WithLock(key, func() error {
		return s.backend.Delete(ctx, key, SlotCart)
	})
}

func (s *LocalStore) SaveOrder(ctx context.Context, key string, order any) error {
	data, err := json.Marshal(order)
	if err != nil {
		return newErrEncodeFailed(err, SlotLastOrder)
	}

	return s.locks.WithLock(key, func() error {
		return s.backend.Set(ctx, key, SlotLastOrder, data)
	})
}

func (s *LocalStore) LastOrder(ctx context.Context, key string, v any) error {
	var data []byte
	err := s.locks.WithLock(key, func() error {
		var err error
		data, err = s.backend.Get(ctx, key, SlotLastOrder)
		return err
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return NewErrCorruptedSlot(err, SlotLastOrder)
	}

	return nil
}

// Wait 진행 중인 복제가 모두 끝날 때까지 대기합니다.
func (s *LocalStore) Wait() {
	s.mirrorWG.Wait()
}

// readLines 저장된 장바구니를 읽어 각 Line의 타입을 보정합니다. 가격 필터링은 하지 않습니다.
// 호출자는 키에 대한 락을 보유하고 있어야 합니다.
func (s *LocalStore) readLines(ctx context.Context, key string) ([]Line, error) {
	data, err := s.backend.Get(ctx, key, SlotCart)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":   key,
			"error": err,
		}).Warn("저장된 장바구니를 해석할 수 없어 빈 장바구니로 처리합니다")

		return nil, nil
	}

	lines := make([]Line, 0, len(raw))
	for _, m := range raw {
		lines = append(lines, coerceLine(m))
	}

	return lines, nil
}

// storedLine 저장소에 기록된 Line. 클라이언트가 직접 기록한 값일 수 있으므로 숫자 필드의 타입을 신뢰하지 않습니다.
type storedLine struct {
	ID       string `json:"id"`
	Quantity any    `json:"quantity"`
	Title    string `json:"title"`
	Price    any    `json:"price"`
	Image    string `json:"image"`
	Color    any    `json:"color"`
}

// coerceLine 가격은 실수(기본값 0), 수량은 1 이상의 정수(기본값 1)로 변환하고 색상을 다시 정규화합니다.
func coerceLine(m map[string]any) Line {
	sl, err := maputil.Decode[storedLine](m)
	if err != nil {
		sl = &storedLine{}
	}

	colorToken := "unknown"
	if sl.Color != nil {
		if s := fmt.Sprint(sl.Color); s != "" {
			colorToken = s
		}
	}

	return Line{
		VariantID: sl.ID,
		Quantity:  max(maputil.ToInt(sl.Quantity, 1), 1),
		Title:     sl.Title,
		Price:     maputil.ToFloat(sl.Price),
		ImageURL:  sl.Image,
		Color:     color.Normalize(colorToken),
	}
}

func validateLineInput(in LineInput) error {
	switch {
	case in.VariantID == "":
		return NewErrInvalidLine("id")
	case in.Quantity <= 0:
		return NewErrInvalidLine("quantity")
	case in.Price == 0:
		return NewErrInvalidLine("price")
	case in.ImageURL == "":
		return NewErrInvalidLine("image")
	}
	return nil
}

func mergeLine(lines []Line, in LineInput) []Line {
	for i := range lines {
		if lines[i].VariantID == in.VariantID {
			lines[i].Quantity += in.Quantity
			return lines
		}
	}

	return append(lines, Line{
		VariantID: in.VariantID,
		Quantity:  in.Quantity,
		Title:     in.Title,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		Color:     color.Normalize(in.ColorToken),
	})
}

// mirrorAsync 요청 컨텍스트의 취소와 무관하게 별도의 타임아웃으로 복제를 수행합니다. 결과를 기다리지 않습니다.
func (s *LocalStore) mirrorAsync(ctx context.Context, key string, lines []Line) {
	if s.mirror == nil {
		return
	}

	snapshot := append([]Line(nil), lines...)

	s.mirrorWG.Add(1)
	go func() {
		defer s.mirrorWG.Done()
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"key":   key,
					"panic": r,
				}).Error("장바구니 복제 중단: 패닉 발생")
			}
		}()

		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.mirrorTimeout)
		defer cancel()

		if err := s.mirror.Mirror(mctx, snapshot); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"key":   key,
				"lines": len(snapshot),
				"error": err,
			}).Warn("장바구니 복제 실패: 저장된 장바구니는 유지됩니다")
		}
	}()
}
