package cart

import (
	"context"
	"sync"
)

// Backend 클라이언트 키와 슬롯 이름으로 구분되는 원시 데이터(JSON) 저장소입니다.
//
// 저장된 데이터가 없으면 Get은 ErrSlotNotFound를 반환합니다.
// Delete는 데이터가 없어도 에러를 반환하지 않습니다.
type Backend interface {
	Get(ctx context.Context, key, slot string) ([]byte, error)
	Set(ctx context.Context, key, slot string, data []byte) error
	Delete(ctx context.Context, key, slot string) error
}

// MemoryBackend 프로세스 메모리에 데이터를 보관하는 Backend입니다. 재시작하면 모든 데이터가 유실됩니다.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend 새로운 MemoryBackend를 생성합니다.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string][]byte),
	}
}

func memoryKey(key, slot string) string {
	return key + "\x00" + slot
}

func (b *MemoryBackend) Get(_ context.Context, key, slot string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[memoryKey(key, slot)]
	if !ok {
		return nil, ErrSlotNotFound
	}

	return append([]byte(nil), v...), nil
}

func (b *MemoryBackend) Set(_ context.Context, key, slot string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[memoryKey(key, slot)] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key, slot string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, memoryKey(key, slot))
	return nil
}
