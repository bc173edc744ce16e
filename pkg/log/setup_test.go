package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 전역 logrus 상태를 변경하므로 이 파일의 테스트는 병렬로 실행하지 않습니다.

func TestSetup_CreatesChannelFiles(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()
	opts := NewProductionOptions("storefront-test")
	opts.Dir = dir

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Error("critical message")
	WithComponent("test").Debug("verbose message")

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close(), "Close는 여러 번 호출해도 안전해야 합니다")

	mainLog, err := os.ReadFile(filepath.Join(dir, "storefront-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "critical message")
	assert.NotContains(t, string(mainLog), "verbose message")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "storefront-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "critical message")

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	opts := NewDevelopmentOptions("storefront-once")
	opts.Dir = t.TempDir()
	opts.EnableConsoleLog = false

	first, err := Setup(opts)
	require.NoError(t, err)

	second, err := Setup(Options{})
	require.NoError(t, err, "두 번째 호출은 최초 결과를 그대로 반환해야 합니다")
	assert.Same(t, first, second)

	_ = first.Close()
}

func TestSetup_InvalidOptions(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	_, err := Setup(Options{})
	assert.ErrorContains(t, err, "Name")
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "valid", opts: Options{Name: "app"}},
		{name: "missing name", opts: Options{}, wantErr: true},
		{name: "dir is file", opts: Options{Name: "app", Dir: file}, wantErr: true},
		{name: "negative max age", opts: Options{Name: "app", MaxAge: -1}, wantErr: true},
		{name: "negative max size", opts: Options{Name: "app", MaxSizeMB: -1}, wantErr: true},
		{name: "negative max backups", opts: Options{Name: "app", MaxBackups: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
