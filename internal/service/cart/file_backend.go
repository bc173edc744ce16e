package cart

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
)

// defaultDataDirectory 장바구니를 저장할 기본 디렉토리입니다.
const defaultDataDirectory = "data/carts"

// tempFilePattern 원자적 쓰기 중 생성되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "cart-*.tmp"

// staleTempFileAge 이 시간보다 오래된 임시 파일은 이전 실행에서 남은 것으로 보고 정리합니다.
const staleTempFileAge = time.Hour

// FileBackend 클라이언트 키와 슬롯마다 하나의 JSON 파일을 사용하는 Backend입니다.
//
// [파일 구조]
//   - cart-{키}-{슬롯}-{hash}.json: 슬롯 데이터
//   - cart-*.tmp: 원자적 쓰기 중 생성되는 임시 파일
//
// 같은 파일에 대한 동시 쓰기는 호출자(LocalStore)의 키별 락으로 직렬화됩니다.
type FileBackend struct {
	baseDir string
}

var _ Backend = (*FileBackend)(nil)

// NewFileBackend 파일 시스템 기반의 Backend를 생성합니다.
//
// 디렉토리를 미리 생성해 접근 권한 문제를 조기에 발견하고, 이전 실행에서 남은 임시 파일을 백그라운드에서 정리합니다.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, newErrStorageIO(err, "초기화(절대 경로 변환)")
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, newErrStorageIO(err, "초기화(디렉토리 생성)")
	}

	b := &FileBackend{baseDir: absDir}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"base_dir": b.baseDir,
					"panic":    r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		b.cleanupStaleTempFiles()
	}()

	return b, nil
}

func (b *FileBackend) Get(_ context.Context, key, slot string) ([]byte, error) {
	path, err := b.resolveSafePath(key, slot)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotNotFound
		}
		return nil, newErrStorageIO(err, "읽기")
	}

	return data, nil
}

func (b *FileBackend) Set(_ context.Context, key, slot string, data []byte) error {
	path, err := b.resolveSafePath(key, slot)
	if err != nil {
		return err
	}

	return b.writeAtomic(path, data)
}

func (b *FileBackend) Delete(_ context.Context, key, slot string) error {
	path, err := b.resolveSafePath(key, slot)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return newErrStorageIO(err, "삭제")
	}

	return nil
}

// resolveSafePath 키와 슬롯으로 파일 경로를 만들고, 그 경로가 baseDir 하위인지 검증합니다.
func (b *FileBackend) resolveSafePath(key, slot string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":  key,
			"slot": slot,
		}).Warn("파일 경로 생성 차단: 키에 경로 문자가 포함되어 있습니다")

		return "", ErrPathTraversalDetected
	}

	filename := generateFilename(key, slot)
	cleanPath := filepath.Clean(filepath.Join(b.baseDir, filename))

	// 단순 접두사 비교는 형제 디렉토리(/data/carts-evil)를 통과시키므로 상대 경로로 검증합니다.
	rel, err := filepath.Rel(b.baseDir, cleanPath)
	if err != nil {
		return "", newErrStorageIO(err, "경로 해석")
	}
	if rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":      key,
			"slot":     slot,
			"filename": filename,
			"base_dir": b.baseDir,
			"rel_path": rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 임시 파일 쓰기 → fsync → rename 순서로 데이터를 원자적으로 저장합니다.
// 저장 도중 프로세스가 종료되어도 기존 파일은 온전히 남습니다.
func (b *FileBackend) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return newErrStorageIO(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return newErrStorageIO(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		return newErrStorageIO(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return newErrStorageIO(err, "파일 닫기")
	}
	if err := renameWithRetry(tmpPath, path); err != nil {
		return newErrStorageIO(err, "파일 이름 변경")
	}

	// 실패해도 데이터는 이미 기록되었으므로 무시합니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 환경(Windows)을 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}

func (b *FileBackend) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(b.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   b.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	threshold := time.Now().Add(-staleTempFileAge)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(b.baseDir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}
