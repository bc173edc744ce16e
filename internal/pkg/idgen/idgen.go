// Package idgen 체크아웃 세션처럼 URL에 노출되는 식별자를 생성합니다.
package idgen

import (
	"sync/atomic"
	"time"
)

// base62Chars ASCII 순서를 따르므로 문자열 정렬 순서가 생성 시각 순서와 일치합니다.
const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	base62Len = int64(len(base62Chars))

	// seqLength 시퀀스 부분의 고정 길이
	seqLength = 6
)

// Generator 시간 순으로 정렬 가능한 URL-safe 식별자를 생성합니다.
//
// ID 구조: [나노초 타임스탬프(Base62)][시퀀스(Base62, 6자리 고정)]
type Generator struct {
	counter atomic.Uint32

	now func() time.Time
}

// NewGenerator 새로운 Generator를 생성합니다.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// New 새로운 식별자를 생성합니다. 여러 고루틴에서 동시에 호출해도 안전합니다.
func (g *Generator) New() string {
	now := time.Now
	if g.now != nil {
		now = g.now
	}

	ts := now().UnixNano()
	seq := g.counter.Add(1)

	b := make([]byte, 0, 18)
	b = appendBase62(b, ts)
	b = appendBase62FixedLength(b, int64(seq), seqLength)

	return string(b)
}

func appendBase62(dst []byte, num int64) []byte {
	if num == 0 {
		return append(dst, base62Chars[0])
	}
	if num < 0 {
		num = -num
	}

	var temp [20]byte
	i := len(temp)
	for num > 0 {
		i--
		temp[i] = base62Chars[num%base62Len]
		num /= base62Len
	}

	return append(dst, temp[i:]...)
}

// appendBase62FixedLength 부족한 자릿수는 앞에 '0'을 채웁니다. 숫자가 length보다 길면 자르지 않습니다.
func appendBase62FixedLength(dst []byte, num int64, length int) []byte {
	encoded := appendBase62(nil, num)
	for i := len(encoded); i < length; i++ {
		dst = append(dst, base62Chars[0])
	}
	return append(dst, encoded...)
}
